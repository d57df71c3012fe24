// Package rotor implements a single enciphering wheel.
//
// A rotor keeps two lookup tables built once at construction: the right-to-left
// wiring with the ring setting (Ringstellung) already applied, and its inverse.
// The current indicator is applied to the incoming contact and removed from the
// outgoing one on every lookup, so neighbouring rotors always talk in the
// machine's fixed frame regardless of how far each wheel has turned.
//
// Ring settings follow the historical convention: with ring B every contact of
// the core is wired one place further on, so ring B at position B enciphers
// like ring A at position A.
package rotor

import (
	"errors"
	"fmt"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
)

var (
	ErrInvalidRotorChoice = errors.New("invalid rotor choice")
	ErrInvalidOffset      = errors.New("ring offset is outside of the 0-25 range")
)

type table [alphabet.Size]alphabet.Letter

type Rotor struct {
	kind      Type
	ring      alphabet.Letter
	initial   alphabet.Letter
	indicator alphabet.Letter
	forward   table
	backward  table
}

type Option func(*config) error

type config struct {
	indicator alphabet.Letter
}

func WithIndicator(position int) Option {
	return func(c *config) error {
		l := alphabet.FromIndex(position)
		if !l.IsValid() {
			return fmt.Errorf("%w: starting indicator %d", alphabet.ErrInvalidLetter, position)
		}
		c.indicator = l
		return nil
	}
}

func New(name string, ring int, opts ...Option) (*Rotor, error) {
	kind, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	ringLetter := alphabet.FromIndex(ring)
	if !ringLetter.IsValid() {
		return nil, fmt.Errorf("%w: rotor %s ring %d", ErrInvalidOffset, kind.Name, ring)
	}

	cfg := config{indicator: alphabet.A}
	for _, opt := range opts {
		if optErr := opt(&cfg); optErr != nil {
			return nil, optErr
		}
	}

	r := &Rotor{
		kind:      kind,
		ring:      ringLetter,
		initial:   cfg.indicator,
		indicator: cfg.indicator,
	}
	if err := r.wire(); err != nil {
		return nil, err
	}

	return r, nil
}

func MustNew(name string, ring int, opts ...Option) *Rotor {
	r, err := New(name, ring, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// wire shifts the base wiring by the ring setting: contact i is wired to
// whatever contact i-ring is wired to in the base table, moved up by ring.
func (r *Rotor) wire() error {
	shift := r.ring.Index()
	for i := range alphabet.Size {
		base := alphabet.FromRune(rune(r.kind.Wiring[mod(i-shift)]))
		if !base.IsValid() {
			return fmt.Errorf("%w: rotor %s has malformed wiring", ErrInvalidRotorChoice, r.kind.Name)
		}
		r.forward[i] = base.Offset(shift)
	}

	seen := [alphabet.Size]bool{}
	for i, out := range r.forward {
		if seen[out] {
			return fmt.Errorf("%w: rotor %s wiring is not a permutation", ErrInvalidRotorChoice, r.kind.Name)
		}
		seen[out] = true
		r.backward[out] = alphabet.Letter(i)
	}

	return nil
}

func (r *Rotor) EncipherRightToLeft(l alphabet.Letter) alphabet.Letter {
	return r.pass(&r.forward, l)
}

func (r *Rotor) EncipherLeftToRight(l alphabet.Letter) alphabet.Letter {
	return r.pass(&r.backward, l)
}

func (r *Rotor) pass(t *table, l alphabet.Letter) alphabet.Letter {
	if !l.IsValid() {
		return alphabet.Invalid
	}
	pos := r.indicator.Index()
	return t[l.Offset(pos)].Offset(-pos)
}

// Step advances the indicator by one position and reports whether the
// rotor was sitting on a notch before moving.
func (r *Rotor) Step() bool {
	wasAtNotch := r.AtNotch()
	r.indicator = r.indicator.Succ()
	return wasAtNotch
}

func (r *Rotor) AtNotch() bool {
	return r.kind.IsNotch(r.indicator)
}

func (r *Rotor) Stepping() bool {
	return !r.kind.Thin()
}

func (r *Rotor) Type() Type {
	return r.kind.clone()
}

func (r *Rotor) Name() string {
	return r.kind.Name
}

func (r *Rotor) Ring() alphabet.Letter {
	return r.ring
}

func (r *Rotor) Indicator() alphabet.Letter {
	return r.indicator
}

func (r *Rotor) SetIndicator(position int) error {
	l := alphabet.FromIndex(position)
	if !l.IsValid() {
		return fmt.Errorf("%w: indicator %d", alphabet.ErrInvalidLetter, position)
	}
	r.indicator = l
	return nil
}

// Reset turns the rotor back to the indicator it was constructed with.
func (r *Rotor) Reset() {
	r.indicator = r.initial
}

func (r *Rotor) String() string {
	return fmt.Sprintf("%s(%s@%s)", r.kind.Name, r.ring, r.indicator)
}

func mod(v int) int {
	v %= alphabet.Size
	if v < 0 {
		v += alphabet.Size
	}
	return v
}
