package testredis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func MakeClientFromMini(t *testing.T, mr *miniredis.Miniredis) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		require.NoError(t, rdb.Close())
	})
	return rdb
}

func MakeClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return MakeClientFromMini(t, mr)
}
