package keysheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
	"github.com/sergeii/enigmasim/pkg/enigma/plugboard"
	"github.com/sergeii/enigmasim/pkg/random"
)

const (
	ModelM3 = "m3"
	ModelM4 = "m4"

	DefaultPlugs = 10
	MaxDays      = 31
)

var ErrInvalidGenerateOpts = errors.New("invalid key sheet options")

var (
	wideRotors     = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"} // nolint: gochecknoglobals
	thinRotors     = []string{"Beta", "Gamma"}                                   // nolint: gochecknoglobals
	wideReflectors = []string{"B", "C"}                                          // nolint: gochecknoglobals
	thinReflectors = []string{"B-Thin", "C-Thin"}                                // nolint: gochecknoglobals
)

type GenerateOpts struct {
	Days  int
	Model string
	Plugs int
	// Prefix is followed by the day of the month in entry names, e.g. "Day 07"
	Prefix string
}

// Generate draws a key for every day of a month, the way key sheets were issued.
// Rotors are never repeated within a key and every plug pair uses fresh letters.
func Generate(src random.Source, opts GenerateOpts) (Sheet, error) {
	if opts.Days < 1 || opts.Days > MaxDays {
		return Sheet{}, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidGenerateOpts, MaxDays)
	}
	if opts.Plugs < 0 || opts.Plugs > plugboard.MaxPairs {
		return Sheet{}, fmt.Errorf("%w: plugs must be between 0 and %d", ErrInvalidGenerateOpts, plugboard.MaxPairs)
	}
	if opts.Model != ModelM3 && opts.Model != ModelM4 {
		return Sheet{}, fmt.Errorf("%w: unknown model %q", ErrInvalidGenerateOpts, opts.Model)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "Day"
	}

	sheet := Sheet{Profiles: make([]Entry, 0, opts.Days)}
	for day := 1; day <= opts.Days; day++ {
		sheet.Profiles = append(sheet.Profiles, Entry{
			Name: fmt.Sprintf("%s %02d", prefix, day),
			Key:  generateKey(src, opts.Model, opts.Plugs),
		})
	}
	return sheet, nil
}

func generateKey(src random.Source, model string, plugs int) keysetting.KeySetting {
	key := keysetting.KeySetting{
		Rotors: random.Pick(src, wideRotors, 3),
	}
	switch model {
	case ModelM4:
		key.Reflector = random.Choice(src, thinReflectors)
		key.Rotors = append([]string{random.Choice(src, thinRotors)}, key.Rotors...)
	default:
		key.Reflector = random.Choice(src, wideReflectors)
	}
	key.Rings = randomLetters(src, len(key.Rotors))
	key.Positions = randomLetters(src, len(key.Rotors))

	letters := random.Pick(src, alphabet.All(), plugs*2)
	key.Plugs = make([]string, 0, plugs)
	for i := 0; i < len(letters); i += 2 {
		key.Plugs = append(key.Plugs, alphabet.String(letters[i:i+2]))
	}

	return key
}

func randomLetters(src random.Source, n int) string {
	var b strings.Builder
	for range n {
		b.WriteRune(alphabet.FromIndex(src.IntN(alphabet.Size)).Rune())
	}
	return b.String()
}

// Write encodes the sheet in the format understood by Load.
func Write(w io.Writer, sheet Sheet) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sheet); err != nil {
		return fmt.Errorf("encode key sheet: %w", err)
	}
	return encoder.Close()
}
