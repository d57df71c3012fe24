package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigmasim/pkg/enigma/alphabet"
	"github.com/sergeii/enigmasim/pkg/enigma/plugboard"
	"github.com/sergeii/enigmasim/pkg/enigma/reflector"
	"github.com/sergeii/enigmasim/pkg/enigma/rotor"
)

func ValidateRotor(fl validator.FieldLevel) bool {
	_, err := rotor.Lookup(fl.Field().String())
	return err == nil
}

func ValidateReflector(fl validator.FieldLevel) bool {
	_, err := reflector.Lookup(fl.Field().String())
	return err == nil
}

// ValidatePlugPair accepts a single plugboard cable such as "AZ" or "a:z".
func ValidatePlugPair(fl validator.FieldLevel) bool {
	_, err := plugboard.New(fl.Field().String())
	return err == nil
}

// ValidateWindow accepts rotor positions as seen in the machine window, e.g. "ADU" or "vjna".
func ValidateWindow(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// don't validate empty value
	if value == "" {
		return true
	}

	for _, r := range value {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if !alphabet.FromRune(r).IsValid() {
			return false
		}
	}

	return true
}
