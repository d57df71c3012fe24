package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
	"github.com/sergeii/enigmasim/internal/persistence/redis/redislock"
)

const (
	itemsKey   = "profiles:items"
	indexKey   = "profiles:index"
	lockKeyFmt = "profiles:lock:%s"
)

type hashGetter interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

type Repository struct {
	client   *redis.Client
	locker   *redislock.Manager
	lockOpts redislock.RetryOpts
}

func New(client *redis.Client, locker *redislock.Manager) *Repository {
	return &Repository{
		client:   client,
		locker:   locker,
		lockOpts: redislock.DefaultRetryOpts(),
	}
}

func (r *Repository) Get(ctx context.Context, slug string) (profile.Profile, error) {
	return r.get(ctx, r.client, slug)
}

func (r *Repository) Add(
	ctx context.Context,
	prof profile.Profile,
	onConflict func(*profile.Profile) bool,
) (profile.Profile, error) {
	var added profile.Profile
	err := r.locker.GuardRetry(ctx, lockKey(prof.Slug), r.lockOpts, func(tx *redis.Tx) error {
		var err error
		added, err = r.add(ctx, tx, prof, onConflict)
		return err
	})
	if err != nil {
		return profile.Blank, err
	}
	return added, nil
}

func (r *Repository) add(
	ctx context.Context,
	tx *redis.Tx,
	prof profile.Profile,
	onConflict func(*profile.Profile) bool,
) (profile.Profile, error) {
	existing, err := r.get(ctx, tx, prof.Slug)
	switch {
	case err == nil:
		// let the caller decide whether the existing profile should be overwritten
		resolved := existing
		if !onConflict(&resolved) {
			return profile.Blank, repositories.ErrProfileExists
		}
		prof = resolved
	case errors.Is(err, repositories.ErrProfileNotFound):
		// nothing to resolve
	default:
		return profile.Blank, err
	}
	return r.save(ctx, tx, prof)
}

func (r *Repository) Remove(ctx context.Context, slug string) error {
	return r.locker.GuardRetry(ctx, lockKey(slug), r.lockOpts, func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, itemsKey, slug).Result()
		if err != nil {
			return fmt.Errorf("remove: %w", err)
		}
		if !exists {
			return repositories.ErrProfileNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, itemsKey, slug)
			pipe.ZRem(ctx, indexKey, slug)
			return nil
		})
		if err != nil {
			return fmt.Errorf("remove: redis pipeline: %w", err)
		}
		return nil
	})
}

// List returns all profiles ordered by slug.
func (r *Repository) List(ctx context.Context) ([]profile.Profile, error) {
	// every member of the index has the same score, so redis keeps them in lexicographical order
	slugs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list: index: %w", err)
	}
	if len(slugs) == 0 {
		return []profile.Profile{}, nil
	}

	items, err := r.client.HMGet(ctx, itemsKey, slugs...).Result()
	if err != nil {
		return nil, fmt.Errorf("list: get items: %w", err)
	}

	result := make([]profile.Profile, 0, len(items))
	for _, item := range items {
		// removed between the two calls
		if item == nil {
			continue
		}
		prof, err := decodeProfile(item)
		if err != nil {
			return nil, fmt.Errorf("list: %w", err)
		}
		result = append(result, prof)
	}

	return result, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	count, err := r.client.HLen(ctx, itemsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return int(count), nil
}

func (r *Repository) get(ctx context.Context, getter hashGetter, slug string) (profile.Profile, error) {
	item, err := getter.HGet(ctx, itemsKey, slug).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return profile.Blank, repositories.ErrProfileNotFound
		}
		return profile.Blank, fmt.Errorf("get: %w", err)
	}
	return decodeProfile(item)
}

func (r *Repository) save(ctx context.Context, tx *redis.Tx, prof profile.Profile) (profile.Profile, error) {
	prof.Version++

	item, err := json.Marshal(prof)
	if err != nil {
		return profile.Blank, fmt.Errorf("save: marshal: %w", err)
	}

	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, itemsKey, prof.Slug, item)
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: 0, Member: prof.Slug})
		return nil
	})
	if err != nil {
		return profile.Blank, fmt.Errorf("save: redis pipeline: %w", err)
	}

	return prof, nil
}

func lockKey(slug string) string {
	return fmt.Sprintf(lockKeyFmt, slug)
}

func decodeProfile(val any) (profile.Profile, error) {
	var prof profile.Profile
	encoded, ok := val.(string)
	if !ok {
		return profile.Blank, fmt.Errorf("unmarshal: unexpected type: %T", val)
	}
	if err := json.Unmarshal([]byte(encoded), &prof); err != nil {
		return profile.Blank, fmt.Errorf("unmarshal: %w", err)
	}
	return prof, nil
}
