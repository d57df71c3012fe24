package profilefactory

import (
	"context"
	"time"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
)

type BuildParams struct {
	Name string
	Key  keysetting.KeySetting
	Now  time.Time
}

type BuildOption func(*BuildParams)

func WithName(name string) BuildOption {
	return func(p *BuildParams) {
		p.Name = name
	}
}

func WithKey(key keysetting.KeySetting) BuildOption {
	return func(p *BuildParams) {
		p.Key = key
	}
}

func WithPositions(positions string) BuildOption {
	return func(p *BuildParams) {
		p.Key = p.Key.WithPositions(positions)
	}
}

func WithTime(now time.Time) BuildOption {
	return func(p *BuildParams) {
		p.Now = now
	}
}

func DefaultKey() keysetting.KeySetting {
	return keysetting.KeySetting{
		Reflector: "B",
		Rotors:    []string{"I", "II", "III"},
		Rings:     "AAA",
		Positions: "AAA",
	}
}

func Build(opts ...BuildOption) profile.Profile {
	params := BuildParams{
		Name: "Daily Key",
		Key:  DefaultKey(),
		Now:  time.Date(1941, 5, 9, 12, 0, 0, 0, time.UTC),
	}

	for _, opt := range opts {
		opt(&params)
	}

	return profile.MustNew(params.Name, params.Key, params.Now)
}

func Save(
	ctx context.Context,
	repo repositories.ProfileRepository,
	prof profile.Profile,
) profile.Profile {
	saved, err := repo.Add(ctx, prof, repositories.ProfileOnConflictIgnore)
	if err != nil {
		panic(err)
	}
	return saved
}

func Create(
	ctx context.Context,
	repo repositories.ProfileRepository,
	opts ...BuildOption,
) profile.Profile {
	return Save(ctx, repo, Build(opts...))
}
