package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigmasim/internal/validation/validators"
)

var custom = map[string]validator.Func{ // nolint: gochecknoglobals
	"rotor":     validators.ValidateRotor,
	"reflector": validators.ValidateReflector,
	"plugpair":  validators.ValidatePlugPair,
	"window":    validators.ValidateWindow,
}

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := registerAll(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

func MustNew() *validator.Validate {
	validate, err := New()
	if err != nil {
		panic(err)
	}
	return validate
}

// Register makes the custom validators available to gin's request binding.
func Register() error {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return registerAll(validate)
}

func registerAll(validate *validator.Validate) error {
	for tag, fn := range custom {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}
