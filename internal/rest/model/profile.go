package model

import (
	"time"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
)

type NewProfile struct {
	Name string `binding:"required,max=64" example:"Daily Key" json:"name"`
	Key  Key    `binding:"required"        json:"key"`
}

type UpdateProfile struct {
	Key Key `binding:"required" json:"key"`
}

type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Key       Key       `json:"key"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProfileFromDomain(prof profile.Profile) Profile {
	return Profile{
		ID:        prof.ID.String(),
		Name:      prof.Name,
		Slug:      prof.Slug,
		Key:       NewKeyFromDomain(prof.Key),
		Version:   prof.Version,
		CreatedAt: prof.CreatedAt,
		UpdatedAt: prof.UpdatedAt,
	}
}
