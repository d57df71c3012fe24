// Package rotorbank drives the rotors of a machine through their stepping cycle.
//
// Rotors are kept right to left: the fast rotor first, then the middle and
// the slow one, then an optional thin rotor that never moves. Stepping follows
// the pawl-and-ratchet mechanics of the M3/M4, including the double step of
// the middle rotor.
package rotorbank

import (
	"fmt"
	"strings"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
)

const (
	SteppingRotors = 3
	fast           = 0
	middle         = 1
	slow           = 2
)

type Bank struct {
	rotors []*rotor.Rotor
}

// New takes ownership of the rotors, listed from the rightmost (fast) one.
func New(rotors ...*rotor.Rotor) (*Bank, error) {
	if len(rotors) != SteppingRotors && len(rotors) != SteppingRotors+1 {
		return nil, fmt.Errorf(
			"%w: expected %d or %d rotors, got %d",
			rotor.ErrInvalidRotorChoice, SteppingRotors, SteppingRotors+1, len(rotors),
		)
	}

	seen := make(map[string]struct{}, len(rotors))
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%w: rotor slot %d is empty", rotor.ErrInvalidRotorChoice, i)
		}
		if _, ok := seen[r.Name()]; ok {
			return nil, fmt.Errorf("%w: rotor %s is used more than once", rotor.ErrInvalidRotorChoice, r.Name())
		}
		seen[r.Name()] = struct{}{}

		switch {
		case i < SteppingRotors && !r.Stepping():
			return nil, fmt.Errorf(
				"%w: thin rotor %s cannot be placed in a stepping slot", rotor.ErrInvalidRotorChoice, r.Name(),
			)
		case i == SteppingRotors && r.Stepping():
			return nil, fmt.Errorf(
				"%w: only a thin rotor fits next to the reflector, got %s", rotor.ErrInvalidRotorChoice, r.Name(),
			)
		}
	}

	return &Bank{rotors: rotors}, nil
}

// Step moves the rotors once, the way a key press does before the lamp lights up.
func (b *Bank) Step() {
	// the middle rotor resting on its notch lets the slow rotor's pawl engage,
	// which pushes both the slow and the middle rotor on this key press
	doubleStep := b.rotors[middle].AtNotch()
	carry := b.rotors[fast].Step()
	if carry || doubleStep {
		b.rotors[middle].Step()
	}
	if doubleStep {
		b.rotors[slow].Step()
	}
}

func (b *Bank) RightToLeft(l alphabet.Letter) alphabet.Letter {
	for _, r := range b.rotors {
		l = r.EncipherRightToLeft(l)
	}
	return l
}

func (b *Bank) LeftToRight(l alphabet.Letter) alphabet.Letter {
	for i := len(b.rotors) - 1; i >= 0; i-- {
		l = b.rotors[i].EncipherLeftToRight(l)
	}
	return l
}

func (b *Bank) Reset() {
	for _, r := range b.rotors {
		r.Reset()
	}
}

func (b *Bank) Len() int {
	return len(b.rotors)
}

func (b *Bank) Thin() bool {
	return len(b.rotors) > SteppingRotors
}

// Indicators returns the current positions right to left.
func (b *Bank) Indicators() []alphabet.Letter {
	indicators := make([]alphabet.Letter, 0, len(b.rotors))
	for _, r := range b.rotors {
		indicators = append(indicators, r.Indicator())
	}
	return indicators
}

// Window renders the indicators left to right, as the operator sees them.
func (b *Bank) Window() string {
	var sb strings.Builder
	for i := len(b.rotors) - 1; i >= 0; i-- {
		sb.WriteRune(b.rotors[i].Indicator().Rune())
	}
	return sb.String()
}

// Names returns the rotor names left to right.
func (b *Bank) Names() []string {
	names := make([]string, 0, len(b.rotors))
	for i := len(b.rotors) - 1; i >= 0; i-- {
		names = append(names, b.rotors[i].Name())
	}
	return names
}
