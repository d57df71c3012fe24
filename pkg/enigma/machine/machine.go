// Package machine wires rotors, reflector and plugboard into a working Enigma.
//
// A Machine keeps mutable rotor positions and must not be shared between
// goroutines. Build a separate machine from the same Config for every stream.
package machine

import (
	"errors"
	"fmt"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
	"github.com/sergeii/enigmasim/pkg/enigma/plugboard"
	"github.com/sergeii/enigmasim/pkg/enigma/reflector"
	"github.com/sergeii/enigmasim/pkg/enigma/rotorbank"
)

var ErrIncompatibleReflector = fmt.Errorf(
	"%w: thin reflectors require a thin rotor and vice versa",
	reflector.ErrInvalidReflectorConfiguration,
)

type Machine struct {
	bank      *rotorbank.Bank
	reflector reflector.Reflector
	plugboard plugboard.Plugboard
}

func New(
	bank *rotorbank.Bank,
	ref reflector.Reflector,
	pb plugboard.Plugboard,
) (*Machine, error) {
	if bank == nil {
		return nil, errors.New("machine: rotor bank is required")
	}
	if bank.Thin() != ref.Thin() {
		return nil, fmt.Errorf("%w: reflector %s, %d rotors", ErrIncompatibleReflector, ref.Name(), bank.Len())
	}
	return &Machine{
		bank:      bank,
		reflector: ref,
		plugboard: pb,
	}, nil
}

// EncipherLetter presses a single key: the rotors move first, then the
// current flows through the plugboard, rotors, reflector and back.
func (m *Machine) EncipherLetter(l alphabet.Letter) (alphabet.Letter, error) {
	if !l.IsValid() {
		return alphabet.Invalid, alphabet.ErrInvalidLetter
	}
	m.bank.Step()
	return m.route(l), nil
}

func (m *Machine) route(l alphabet.Letter) alphabet.Letter {
	l = m.plugboard.Swap(l)
	l = m.bank.RightToLeft(l)
	l = m.reflector.Reflect(l)
	l = m.bank.LeftToRight(l)
	return m.plugboard.Swap(l)
}

// EncipherText enciphers letters in order. The input is checked up front,
// so an invalid letter leaves the rotors untouched.
func (m *Machine) EncipherText(letters []alphabet.Letter) ([]alphabet.Letter, error) {
	for i, l := range letters {
		if !l.IsValid() {
			return nil, fmt.Errorf("%w: position %d", alphabet.ErrInvalidLetter, i)
		}
	}
	out := make([]alphabet.Letter, len(letters))
	for i, l := range letters {
		m.bank.Step()
		out[i] = m.route(l)
	}
	return out, nil
}

func (m *Machine) Reset() {
	m.bank.Reset()
}

func (m *Machine) Window() string {
	return m.bank.Window()
}

func (m *Machine) Rotors() []string {
	return m.bank.Names()
}

func (m *Machine) Reflector() reflector.Reflector {
	return m.reflector
}

func (m *Machine) Plugboard() plugboard.Plugboard {
	return m.plugboard
}
