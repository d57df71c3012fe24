// Package keysheet reads key sheets, YAML files listing named key settings
// the way a monthly key sheet lists the settings for each day.
//
//	profiles:
//	  - name: Heer 1930
//	    key:
//	      reflector: A
//	      rotors: [II, I, III]
//	      rings: 24 13 22
//	      positions: ABL
//	      plugs: [AM, FI, NV, PS, TU, WZ]
//	  - name: U-534
//	    key: B-Thin Beta-II-IV-I AAAV VJNA AT BL DF GJ HM NW OP QY RZ VX
package keysheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/core/entities/profile"
)

var (
	ErrInvalidSheet  = errors.New("invalid key sheet")
	ErrEntryNotFound = errors.New("no such entry on the key sheet")
)

type Entry struct {
	Name string                `validate:"required,max=64" yaml:"name"`
	Key  keysetting.KeySetting `yaml:"key"`
}

type Sheet struct {
	Profiles []Entry `validate:"dive" yaml:"profiles"`
}

func Load(r io.Reader, validate *validator.Validate) (Sheet, error) {
	var sheet Sheet

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return sheet, nil
		}
		return Sheet{}, fmt.Errorf("%w: %w", ErrInvalidSheet, err)
	}

	if err := validate.Struct(sheet); err != nil {
		return Sheet{}, fmt.Errorf("%w: %w", ErrInvalidSheet, err)
	}

	seen := make(map[string]struct{}, len(sheet.Profiles))
	for _, entry := range sheet.Profiles {
		entrySlug := profile.Slugify(entry.Name)
		if entrySlug == "" {
			return Sheet{}, fmt.Errorf("%w: entry %q has no usable name", ErrInvalidSheet, entry.Name)
		}
		if _, ok := seen[entrySlug]; ok {
			return Sheet{}, fmt.Errorf("%w: entry %q is listed more than once", ErrInvalidSheet, entry.Name)
		}
		seen[entrySlug] = struct{}{}
		// field checks do not catch thin reflector mismatches or repeated rotors
		if _, err := entry.Key.Build(); err != nil {
			return Sheet{}, fmt.Errorf("%w: entry %q: %w", ErrInvalidSheet, entry.Name, err)
		}
	}

	return sheet, nil
}

func LoadFile(path string, validate *validator.Validate) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, err
	}
	defer f.Close() // nolint: errcheck
	return Load(f, validate)
}

// Find looks an entry up by its name, ignoring case and punctuation.
func (s Sheet) Find(name string) (Entry, error) {
	wanted := profile.Slugify(name)
	for _, entry := range s.Profiles {
		if profile.Slugify(entry.Name) == wanted {
			return entry, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}
