package profile

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
)

const MaxNameLength = 64

var ErrInvalidName = errors.New("invalid profile name")

// Profile is a key setting stored under a human readable name.
// Profiles are addressed by the slug of their name.
type Profile struct {
	ID        uuid.UUID             `json:"id"`
	Name      string                `json:"name"`
	Slug      string                `json:"slug"`
	Key       keysetting.KeySetting `json:"key"`
	Version   int                   `json:"version"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

var Blank Profile // nolint: gochecknoglobals

func New(name string, key keysetting.KeySetting, now time.Time) (Profile, error) {
	if len(name) > MaxNameLength {
		return Blank, fmt.Errorf("%w: longer than %d characters", ErrInvalidName, MaxNameLength)
	}
	profileSlug := Slugify(name)
	if profileSlug == "" {
		return Blank, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	prof := Profile{
		ID:        uuid.New(),
		Name:      name,
		Slug:      profileSlug,
		Key:       key,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return prof, nil
}

func MustNew(name string, key keysetting.KeySetting, now time.Time) Profile {
	prof, err := New(name, key, now)
	if err != nil {
		panic(err)
	}
	return prof
}

// Slugify turns a profile name into its lookup key, e.g. "U-534 / M4" into "u-534-m4".
func Slugify(name string) string {
	return slug.Make(name)
}

// Replace takes over the name and the key of other while keeping the identity of p.
func (p *Profile) Replace(other Profile, now time.Time) {
	p.Name = other.Name
	p.Key = other.Key
	p.UpdatedAt = now
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Slug, p.Key)
}
