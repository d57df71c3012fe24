package reflector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
)

var ErrInvalidReflectorConfiguration = errors.New("invalid reflector configuration")

type Reflector struct {
	name  string
	thin  bool
	table [alphabet.Size]alphabet.Letter
}

type entry struct {
	name   string
	wiring string
	thin   bool
}

var catalog = []entry{ // nolint: gochecknoglobals
	{name: "A", wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{name: "B", wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{name: "C", wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{name: "B-Thin", wiring: "ENKQAUYWJICOPBLMDXZVFTHRGS", thin: true},
	{name: "C-Thin", wiring: "RDOBJNTKVEHMLFCWZAXGYIPSUQ", thin: true},
}

// New builds a rewirable reflector from a 26-letter wiring string.
// The wiring must pair every letter with a different one.
func New(name, wiring string) (Reflector, error) {
	return build(name, wiring, false)
}

func build(name, wiring string, thin bool) (Reflector, error) {
	if len(wiring) != alphabet.Size {
		return Reflector{}, fmt.Errorf(
			"%w: %s wiring must have %d letters, got %d",
			ErrInvalidReflectorConfiguration, name, alphabet.Size, len(wiring),
		)
	}

	ref := Reflector{name: name, thin: thin}
	for i, r := range wiring {
		l := alphabet.FromRune(r)
		if !l.IsValid() {
			return Reflector{}, fmt.Errorf(
				"%w: %s wiring contains %q", ErrInvalidReflectorConfiguration, name, r,
			)
		}
		ref.table[i] = l
	}

	for i, out := range ref.table {
		in := alphabet.Letter(i)
		if out == in {
			return Reflector{}, fmt.Errorf(
				"%w: %s maps %s to itself", ErrInvalidReflectorConfiguration, name, in,
			)
		}
		if back := ref.table[out]; back != in {
			return Reflector{}, fmt.Errorf(
				"%w: %s maps %s to %s but %s to %s",
				ErrInvalidReflectorConfiguration, name, in, out, out, back,
			)
		}
	}

	return ref, nil
}

func Lookup(name string) (Reflector, error) {
	name = strings.TrimSpace(name)
	for _, e := range catalog {
		if strings.EqualFold(e.name, name) {
			return build(e.name, e.wiring, e.thin)
		}
	}
	return Reflector{}, fmt.Errorf("%w: unknown reflector %q", ErrInvalidReflectorConfiguration, name)
}

func MustLookup(name string) Reflector {
	ref, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return ref
}

func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, e := range catalog {
		names = append(names, e.name)
	}
	return names
}

func (r Reflector) Reflect(l alphabet.Letter) alphabet.Letter {
	if !l.IsValid() {
		return alphabet.Invalid
	}
	return r.table[l]
}

func (r Reflector) Name() string {
	return r.name
}

// Thin reflectors only fit an M4, next to a thin rotor.
func (r Reflector) Thin() bool {
	return r.thin
}

func (r Reflector) Wiring() string {
	return alphabet.String(r.table[:])
}
