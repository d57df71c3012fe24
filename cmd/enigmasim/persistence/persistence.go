package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/persistence"
	"github.com/sergeii/enigmasim/internal/persistence/memory"
	redisrepos "github.com/sergeii/enigmasim/internal/persistence/redis"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

var ErrUnknownStorage = errors.New("persistence: unknown storage")

type Config struct {
	Storage  string
	RedisURL string
}

type Result struct {
	fx.Out

	Profiles repositories.ProfileRepository
}

func Provide(lc fx.Lifecycle, cfg Config, logger *zerolog.Logger) (Result, error) {
	var repos persistence.Repositories

	switch cfg.Storage {
	case StorageMemory, "":
		repos = memory.New()
	case StorageRedis:
		rdb, err := connect(lc, cfg.RedisURL, logger)
		if err != nil {
			return Result{}, err
		}
		repos = redisrepos.New(rdb, logger)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownStorage, cfg.Storage)
	}

	return Result{
		Profiles: repos.Profiles,
	}, nil
}

func connect(lc fx.Lifecycle, url string, logger *zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("persistence: parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if pingErr := rdb.Ping(ctx).Err(); pingErr != nil {
				logger.Error().Err(pingErr).Str("addr", opts.Addr).Msg("Unable to connect to redis")
				return pingErr
			}
			logger.Debug().Str("addr", opts.Addr).Msg("Connected to redis")
			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}
