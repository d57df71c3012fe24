package model

import (
	"github.com/sergeii/enigmasim/internal/core/usecases/encipher"
)

type Encipher struct {
	Text string `binding:"required" example:"Feind liegt bei Aachen" json:"text"`
	// either an inline key or the name of a stored profile
	Key       *Key   `binding:"omitempty"              json:"key,omitempty"`
	Profile   string `binding:"omitempty,max=64"       example:"daily-key" json:"profile,omitempty"`
	Positions string `binding:"omitempty,window"       example:"ADU"       json:"positions,omitempty"`
	Group     *int   `binding:"omitempty,gte=0,lte=64" example:"5"         json:"group,omitempty"`
}

type Enciphered struct {
	Text    string `json:"text"`
	Letters int    `json:"letters"`
	Dropped int    `json:"dropped"`
	Key     Key    `json:"key"`
	Window  string `json:"window"`
}

func NewEncipheredFromResult(result encipher.Result) Enciphered {
	return Enciphered{
		Text:    result.Text,
		Letters: result.Letters,
		Dropped: result.Dropped,
		Key:     NewKeyFromDomain(result.Key),
		Window:  result.Window,
	}
}
