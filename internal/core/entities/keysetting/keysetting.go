package keysetting

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
	"github.com/sergeii/enigmasim/pkg/enigma/machine"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
)

var ErrMalformedKey = errors.New("malformed key setting")

// KeySetting is the daily key as written on a key sheet.
// Rotors are listed left to right. Rings are either letters ("XMV")
// or space separated numbers from 1 to 26 ("24 13 22").
// Positions are the letters visible in the window before the first key press.
// Empty rings or positions default to A for every rotor.
type KeySetting struct {
	Reflector string   `json:"reflector" validate:"required,reflector" yaml:"reflector"`
	Rotors    []string `json:"rotors" validate:"min=3,max=4,dive,rotor" yaml:"rotors"`
	Rings     string   `json:"rings" yaml:"rings"`
	Positions string   `json:"positions" validate:"omitempty,window" yaml:"positions"`
	Plugs     []string `json:"plugs" validate:"max=13,dive,plugpair" yaml:"plugs"`
}

var Blank KeySetting

// Parse reads the compact form produced by String, e.g. "B I-II-III AAA ADU AZ BY".
func Parse(value string) (KeySetting, error) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return Blank, fmt.Errorf("%w: expected at least reflector and rotors in %q", ErrMalformedKey, value)
	}
	ks := KeySetting{
		Reflector: fields[0],
		Rotors:    strings.Split(fields[1], "-"),
	}
	if len(fields) > 2 {
		ks.Rings = fields[2]
	}
	if len(fields) > 3 {
		ks.Positions = fields[3]
	}
	if len(fields) > 4 {
		ks.Plugs = slices.Clone(fields[4:])
	}
	return ks, nil
}

// UnmarshalYAML accepts either a mapping of the fields
// or a scalar in the compact form understood by Parse.
func (ks *KeySetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var compact string
		if err := node.Decode(&compact); err != nil {
			return err
		}
		parsed, err := Parse(compact)
		if err != nil {
			return err
		}
		*ks = parsed
		return nil
	}
	type plain KeySetting
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*ks = KeySetting(decoded)
	return nil
}

// MarshalYAML writes the key in the compact form.
func (ks KeySetting) MarshalYAML() (any, error) {
	return ks.String(), nil
}

func (ks KeySetting) Config() (machine.Config, error) {
	rings, err := parseRings(ks.Rings, len(ks.Rotors))
	if err != nil {
		return machine.Config{}, err
	}
	positions, err := parsePositions(ks.Positions, len(ks.Rotors))
	if err != nil {
		return machine.Config{}, err
	}
	cfg := machine.Config{
		Rotors:    slices.Clone(ks.Rotors),
		Rings:     rings,
		Positions: positions,
		Reflector: ks.Reflector,
		Plugs:     slices.Clone(ks.Plugs),
	}
	return cfg, nil
}

// Build returns a fresh machine set up with the key.
func (ks KeySetting) Build() (*machine.Machine, error) {
	cfg, err := ks.Config()
	if err != nil {
		return nil, err
	}
	return machine.Build(cfg)
}

// WithPositions returns a copy of the key with a different message key.
func (ks KeySetting) WithPositions(positions string) KeySetting {
	cp := ks.clone()
	cp.Positions = positions
	return cp
}

func (ks KeySetting) IsBlank() bool {
	return ks.Reflector == "" && len(ks.Rotors) == 0
}

func (ks KeySetting) String() string {
	parts := []string{
		ks.Reflector,
		strings.Join(ks.Rotors, "-"),
		ks.renderRings(),
		ks.renderPositions(),
	}
	parts = append(parts, ks.Plugs...)
	return strings.Join(parts, " ")
}

func (ks KeySetting) renderRings() string {
	rings, err := parseRings(ks.Rings, len(ks.Rotors))
	if err != nil {
		return ks.Rings
	}
	letters := make([]alphabet.Letter, 0, len(rings))
	for _, r := range rings {
		letters = append(letters, alphabet.FromIndex(r))
	}
	return alphabet.String(letters)
}

func (ks KeySetting) renderPositions() string {
	if strings.TrimSpace(ks.Positions) == "" {
		return strings.Repeat("A", len(ks.Rotors))
	}
	return strings.ToUpper(strings.TrimSpace(ks.Positions))
}

func (ks KeySetting) clone() KeySetting {
	cp := ks
	cp.Rotors = slices.Clone(ks.Rotors)
	cp.Plugs = slices.Clone(ks.Plugs)
	return cp
}

func parseRings(value string, count int) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return make([]int, count), nil
	}
	if strings.IndexFunc(value, unicode.IsDigit) >= 0 {
		return parseRingNumbers(value)
	}
	rings := make([]int, 0, len(value))
	for _, r := range strings.ToUpper(value) {
		l := alphabet.FromRune(r)
		if !l.IsValid() {
			return nil, fmt.Errorf("%w: ring setting %q", rotor.ErrInvalidOffset, value)
		}
		rings = append(rings, l.Index())
	}
	return rings, nil
}

func parseRingNumbers(value string) ([]int, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '-'
	})
	rings := make([]int, 0, len(fields))
	for _, field := range fields {
		num, err := strconv.Atoi(field)
		if err != nil || num < 1 || num > alphabet.Size {
			return nil, fmt.Errorf("%w: ring setting %q", rotor.ErrInvalidOffset, field)
		}
		rings = append(rings, num-1)
	}
	return rings, nil
}

func parsePositions(value string, count int) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return make([]int, count), nil
	}
	positions := make([]int, 0, len(value))
	for _, r := range strings.ToUpper(value) {
		l := alphabet.FromRune(r)
		if !l.IsValid() {
			return nil, fmt.Errorf("%w: position %q", alphabet.ErrInvalidLetter, value)
		}
		positions = append(positions, l.Index())
	}
	return positions, nil
}
