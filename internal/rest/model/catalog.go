package model

import (
	"github.com/gosimple/slug"

	"github.com/sergeii/enigmasim/pkg/enigma/reflector"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
)

type Rotor struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Wiring  string `json:"wiring"`
	Notches string `json:"notches"`
	Thin    bool   `json:"thin"`
}

type Reflector struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Wiring string `json:"wiring"`
	Thin   bool   `json:"thin"`
}

type Catalog struct {
	Rotors     []Rotor     `json:"rotors"`
	Reflectors []Reflector `json:"reflectors"`
}

func NewCatalog() Catalog {
	types := rotor.Types()
	rotors := make([]Rotor, 0, len(types))
	for _, t := range types {
		rotors = append(rotors, Rotor{
			Name:    t.Name,
			Slug:    slug.Make(t.Name),
			Wiring:  t.Wiring,
			Notches: t.NotchString(),
			Thin:    t.Thin(),
		})
	}

	names := reflector.Names()
	reflectors := make([]Reflector, 0, len(names))
	for _, name := range names {
		ref := reflector.MustLookup(name)
		reflectors = append(reflectors, Reflector{
			Name:   ref.Name(),
			Slug:   slug.Make(ref.Name()),
			Wiring: ref.Wiring(),
			Thin:   ref.Thin(),
		})
	}

	return Catalog{
		Rotors:     rotors,
		Reflectors: reflectors,
	}
}
