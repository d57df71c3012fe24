package testapp

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigmasim/cmd/enigmasim/persistence"
)

// ProvidePersistence backs the application with a throwaway redis server.
func ProvidePersistence(tb testing.TB) persistence.Config {
	mr := miniredis.RunT(tb)
	return persistence.Config{
		Storage:  persistence.StorageRedis,
		RedisURL: "redis://" + mr.Addr(),
	}
}

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
