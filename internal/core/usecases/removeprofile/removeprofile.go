package removeprofile

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/metrics"
)

var (
	ErrProfileNotFound       = errors.New("profile not found")
	ErrUnableToRemoveProfile = errors.New("unable to remove profile")
)

type UseCase struct {
	profileRepo repositories.ProfileRepository
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	profileRepo repositories.ProfileRepository,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		profileRepo: profileRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, name string) error {
	profileSlug := profile.Slugify(name)
	if err := uc.profileRepo.Remove(ctx, profileSlug); err != nil {
		switch {
		case errors.Is(err, repositories.ErrProfileNotFound):
			return ErrProfileNotFound
		default:
			uc.logger.Error().Err(err).Str("profile", profileSlug).Msg("Failed to remove profile")
			return ErrUnableToRemoveProfile
		}
	}

	uc.metrics.ProfileOperations.WithLabelValues("remove").Inc()
	uc.logger.Info().Str("profile", profileSlug).Msg("Removed profile")

	return nil
}
