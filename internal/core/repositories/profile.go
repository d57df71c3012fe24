package repositories

import (
	"context"
	"errors"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
)

var (
	ErrProfileNotFound = errors.New("the requested profile was not found")
	ErrProfileExists   = errors.New("profile already exists")
)

func ProfileOnConflictIgnore(_ *profile.Profile) bool {
	return false
}

type ProfileRepository interface {
	Get(ctx context.Context, slug string) (profile.Profile, error)
	// Add stores a new profile. When a profile with the same slug exists,
	// onConflict receives a copy of it and decides whether the modified copy replaces it.
	Add(ctx context.Context, prof profile.Profile, onConflict func(*profile.Profile) bool) (profile.Profile, error)
	Remove(ctx context.Context, slug string) error
	List(ctx context.Context) ([]profile.Profile, error)
	Count(ctx context.Context) (int, error)
}
