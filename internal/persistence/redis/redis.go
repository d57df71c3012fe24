package redis

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/internal/persistence"
	"github.com/sergeii/enigmasim/internal/persistence/redis/redislock"
	"github.com/sergeii/enigmasim/internal/persistence/redis/repositories/profiles"
)

func New(client *redis.Client, logger *zerolog.Logger) persistence.Repositories {
	locker := redislock.NewManager(client, logger)
	return persistence.Repositories{
		Profiles: profiles.New(client, locker),
	}
}
