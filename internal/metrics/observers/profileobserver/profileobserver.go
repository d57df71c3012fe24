package profileobserver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/metrics"
)

type ProfileObserver struct {
	profileRepo repositories.ProfileRepository
	logger      *zerolog.Logger
}

func New(
	collector *metrics.Collector,
	profileRepo repositories.ProfileRepository,
	logger *zerolog.Logger,
) ProfileObserver {
	observer := ProfileObserver{
		profileRepo: profileRepo,
		logger:      logger,
	}
	collector.AddObserver(&observer)
	return observer
}

func (o ProfileObserver) Observe(ctx context.Context, m *metrics.Collector) {
	count, err := o.profileRepo.Count(ctx)
	if err != nil {
		o.logger.Error().Err(err).Msg("Unable to observe profile count")
		return
	}
	m.ProfileRepositorySize.Set(float64(count))
	o.logger.Debug().Int("count", count).Msg("Observed profile count")
}
