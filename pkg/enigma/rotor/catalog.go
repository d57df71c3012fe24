package rotor

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
)

// Type is an immutable catalog entry describing a rotor model.
type Type struct {
	Name    string
	Wiring  string
	Notches []alphabet.Letter
}

// Thin rotors (Beta, Gamma) sit next to the reflector of an M4 and never step.
func (t Type) Thin() bool {
	return len(t.Notches) == 0
}

func (t Type) clone() Type {
	t.Notches = slices.Clone(t.Notches)
	return t
}

func (t Type) IsNotch(l alphabet.Letter) bool {
	for _, n := range t.Notches {
		if n == l {
			return true
		}
	}
	return false
}

func (t Type) NotchString() string {
	var b strings.Builder
	for _, n := range t.Notches {
		b.WriteRune(n.Rune())
	}
	return b.String()
}

var catalog = []Type{ // nolint: gochecknoglobals
	{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: []alphabet.Letter{alphabet.Q}},
	{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: []alphabet.Letter{alphabet.E}},
	{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: []alphabet.Letter{alphabet.V}},
	{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: []alphabet.Letter{alphabet.J}},
	{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: []alphabet.Letter{alphabet.Z}},
	{Name: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Notches: []alphabet.Letter{alphabet.Z, alphabet.M}},
	{Name: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Notches: []alphabet.Letter{alphabet.Z, alphabet.M}},
	{Name: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Notches: []alphabet.Letter{alphabet.Z, alphabet.M}},
	{Name: "Beta", Wiring: "LEYJVCNIXWPBQMDRTAKZGFUHOS"},
	{Name: "Gamma", Wiring: "FSOKANUERHMBTIYCWLQPZXVGJD"},
}

// Types returns copies of the catalog entries, safe to modify.
func Types() []Type {
	types := make([]Type, 0, len(catalog))
	for _, t := range catalog {
		types = append(types, t.clone())
	}
	return types
}

func Lookup(name string) (Type, error) {
	name = strings.TrimSpace(name)
	for _, t := range catalog {
		if strings.EqualFold(t.Name, name) {
			return t.clone(), nil
		}
	}
	return Type{}, fmt.Errorf("%w: %q", ErrInvalidRotorChoice, name)
}
