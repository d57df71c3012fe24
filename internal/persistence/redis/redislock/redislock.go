package redislock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	ErrNotAcquired       = errors.New("lock: not acquired")
	ErrRetriesExhausted  = errors.New("lock: not acquired after all attempts")
	errInvalidRetryCount = errors.New("lock: at least one attempt is required")
)

type RetryOpts struct {
	LeaseDuration time.Duration
	RetryBackoff  time.Duration
	MaxAttempts   int
}

func DefaultRetryOpts() RetryOpts {
	return RetryOpts{
		LeaseDuration: time.Second,
		RetryBackoff:  50 * time.Millisecond,
		MaxAttempts:   5,
	}
}

type Manager struct {
	client *redis.Client
	logger *zerolog.Logger
}

func NewManager(client *redis.Client, logger *zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		logger: logger,
	}
}

// Guard runs op inside a WATCH transaction while holding the lock for key.
// ErrNotAcquired is returned when the lock is held by someone else
// or the ownership was lost before op completed.
func (m *Manager) Guard(ctx context.Context, key string, ttl time.Duration, op func(tx *redis.Tx) error) error {
	token := uuid.NewString()

	acquired, err := m.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return fmt.Errorf("guard: take lock ownership: %w", err)
	}
	if !acquired {
		return ErrNotAcquired
	}
	defer m.release(ctx, key, token)

	err = m.client.Watch(ctx, func(tx *redis.Tx) error {
		// the lock may have expired between SETNX and WATCH
		currToken, err := tx.Get(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("guard: check lock ownership: %w", err)
		}
		if currToken != token {
			return ErrNotAcquired
		}
		return op(tx)
	}, key)
	if err != nil {
		if errors.Is(err, redis.TxFailedErr) || errors.Is(err, ErrNotAcquired) {
			return ErrNotAcquired
		}
		return fmt.Errorf("guard: redis watch: %w", err)
	}

	return nil
}

// GuardRetry keeps calling Guard until the lock is acquired or the attempts run out.
func (m *Manager) GuardRetry(
	ctx context.Context,
	key string,
	opts RetryOpts,
	op func(tx *redis.Tx) error,
) error {
	if opts.MaxAttempts < 1 {
		return errInvalidRetryCount
	}
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		err := m.Guard(ctx, key, opts.LeaseDuration, op)
		if !errors.Is(err, ErrNotAcquired) {
			return err
		}
		m.logger.Debug().Str("key", key).Int("attempt", attempt).Msg("Lock is busy")
		if attempt == opts.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.RetryBackoff):
		}
	}
	return fmt.Errorf("%w: %s after %d attempts", ErrRetriesExhausted, key, opts.MaxAttempts)
}

func (m *Manager) release(ctx context.Context, key, token string) {
	err := m.client.Watch(ctx, func(tx *redis.Tx) error {
		currToken, err := tx.Get(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("release: check lock ownership: %w", err)
		}
		if currToken == token {
			tx.Del(ctx, key)
		}
		return nil
	}, key)
	switch {
	case err == nil:
		return
	case errors.Is(err, redis.Nil), errors.Is(err, redis.TxFailedErr):
		// expired or taken over by another client, nothing left to release
		m.logger.Warn().Str("key", key).Msg("Lock ownership lost while releasing")
	default:
		m.logger.Error().Err(err).Str("key", key).Msg("Failed to release lock")
	}
}
