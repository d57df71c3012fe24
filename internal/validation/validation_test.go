package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigmasim/internal/validation"
)

type keyForm struct {
	Reflector string   `validate:"required,reflector"`
	Rotors    []string `validate:"min=3,max=4,dive,rotor"`
	Positions string   `validate:"window"`
	Plugs     []string `validate:"max=13,dive,plugpair"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		form keyForm
		want bool
	}{
		{
			"army key",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "III"}, Positions: "ADU"},
			true,
		},
		{
			"naval key in lower case",
			keyForm{
				Reflector: "b-thin",
				Rotors:    []string{"beta", "ii", "iv", "i"},
				Positions: "vjna",
				Plugs:     []string{"at", "B:L"},
			},
			true,
		},
		{
			"empty positions",
			keyForm{Reflector: "C", Rotors: []string{"VI", "VII", "VIII"}},
			true,
		},
		{
			"unknown reflector",
			keyForm{Reflector: "D", Rotors: []string{"I", "II", "III"}},
			false,
		},
		{
			"missing reflector",
			keyForm{Rotors: []string{"I", "II", "III"}},
			false,
		},
		{
			"unknown rotor",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "IX"}},
			false,
		},
		{
			"too few rotors",
			keyForm{Reflector: "B", Rotors: []string{"I", "II"}},
			false,
		},
		{
			"digits in positions",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "III"}, Positions: "A1U"},
			false,
		},
		{
			"umlaut in positions",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "III"}, Positions: "ÄDU"},
			false,
		},
		{
			"self plugged letter",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "III"}, Plugs: []string{"AA"}},
			false,
		},
		{
			"malformed plug",
			keyForm{Reflector: "B", Rotors: []string{"I", "II", "III"}, Plugs: []string{"ABC"}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := validation.MustNew()
			err := validate.Struct(tt.form)
			if tt.want {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	require.NoError(t, validation.Register())
	// registering twice overrides the same tags
	require.NoError(t, validation.Register())
}
