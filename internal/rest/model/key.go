package model

import (
	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
)

type Key struct {
	Reflector string   `binding:"required,reflector"     example:"B"     json:"reflector"`
	Rotors    []string `binding:"min=3,max=4,dive,rotor" example:"I,II,III" json:"rotors"`
	Rings     string   `example:"AAA"                    json:"rings"` // letters or numbers, AAA or 1 1 1
	Positions string   `binding:"omitempty,window"       example:"ADU"   json:"positions"`
	Plugs     []string `binding:"max=13,dive,plugpair"   example:"AZ,BY" json:"plugs"`
	Compact   string   `json:"compact,omitempty"` // B I-II-III AAA ADU AZ BY
}

func (k Key) ToDomain() keysetting.KeySetting {
	return keysetting.KeySetting{
		Reflector: k.Reflector,
		Rotors:    k.Rotors,
		Rings:     k.Rings,
		Positions: k.Positions,
		Plugs:     k.Plugs,
	}
}

func NewKeyFromDomain(ks keysetting.KeySetting) Key {
	rotors := ks.Rotors
	if rotors == nil {
		rotors = []string{}
	}
	plugs := ks.Plugs
	if plugs == nil {
		plugs = []string{}
	}
	return Key{
		Reflector: ks.Reflector,
		Rotors:    rotors,
		Rings:     ks.Rings,
		Positions: ks.Positions,
		Plugs:     plugs,
		Compact:   ks.String(),
	}
}
