package machine

import (
	"fmt"

	"github.com/sergeii/enigmasim/pkg/enigma/plugboard"
	"github.com/sergeii/enigmasim/pkg/enigma/reflector"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
	"github.com/sergeii/enigmasim/pkg/enigma/rotorbank"
)

// Config describes a machine the way an operator sets it up.
// Rotors, Rings and Positions are listed left to right.
type Config struct {
	Rotors    []string
	Rings     []int
	Positions []int
	Reflector string
	Plugs     []string
}

func Build(cfg Config) (*Machine, error) {
	count := len(cfg.Rotors)
	if len(cfg.Rings) != count || len(cfg.Positions) != count {
		return nil, fmt.Errorf(
			"%w: %d rotors, %d ring settings and %d positions",
			rotor.ErrInvalidRotorChoice, count, len(cfg.Rings), len(cfg.Positions),
		)
	}

	rotors := make([]*rotor.Rotor, 0, count)
	for i := count - 1; i >= 0; i-- {
		r, err := rotor.New(cfg.Rotors[i], cfg.Rings[i], rotor.WithIndicator(cfg.Positions[i]))
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, r)
	}

	bank, err := rotorbank.New(rotors...)
	if err != nil {
		return nil, err
	}

	ref, err := reflector.Lookup(cfg.Reflector)
	if err != nil {
		return nil, err
	}

	pb, err := plugboard.New(cfg.Plugs...)
	if err != nil {
		return nil, err
	}

	return New(bank, ref, pb)
}

func MustBuild(cfg Config) *Machine {
	m, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return m
}
