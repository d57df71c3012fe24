package saveprofile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/internal/core/entities/keysetting"
	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/metrics"
)

var (
	ErrInvalidName         = profile.ErrInvalidName
	ErrInvalidKey          = errors.New("invalid key")
	ErrProfileExists       = errors.New("profile already exists")
	ErrUnableToSaveProfile = errors.New("unable to save profile")
)

type Request struct {
	Name string
	Key  keysetting.KeySetting
	// Overwrite replaces the key of an existing profile with the same slug
	Overwrite bool
}

type UseCase struct {
	profileRepo repositories.ProfileRepository
	metrics     *metrics.Collector
	clock       clockwork.Clock
	logger      *zerolog.Logger
}

func New(
	profileRepo repositories.ProfileRepository,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		profileRepo: profileRepo,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, req Request) (profile.Profile, error) {
	// never store a key that cannot be set up on a machine
	if _, err := req.Key.Build(); err != nil {
		return profile.Blank, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	now := uc.clock.Now()

	prof, err := profile.New(req.Name, req.Key, now)
	if err != nil {
		return profile.Blank, err
	}

	saved, err := uc.profileRepo.Add(ctx, prof, func(existing *profile.Profile) bool {
		if !req.Overwrite {
			return false
		}
		existing.Replace(prof, now)
		return true
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrProfileExists):
			return profile.Blank, ErrProfileExists
		default:
			uc.logger.Error().Err(err).Str("profile", prof.Slug).Msg("Failed to save profile")
			return profile.Blank, ErrUnableToSaveProfile
		}
	}

	op := "update"
	if saved.Version == 1 {
		op = "create"
	}
	uc.metrics.ProfileOperations.WithLabelValues(op).Inc()

	uc.logger.Info().
		Str("profile", saved.Slug).Stringer("key", saved.Key).Int("version", saved.Version).
		Msg("Saved profile")

	return saved, nil
}
