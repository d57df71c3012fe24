package profiles

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/sergeii/enigmasim/internal/core/entities/profile"
	"github.com/sergeii/enigmasim/internal/core/repositories"
)

type Repository struct {
	profiles map[string]profile.Profile // slug -> profile
	mutex    sync.RWMutex
}

func New() *Repository {
	return &Repository{
		profiles: make(map[string]profile.Profile),
	}
}

func (mr *Repository) Get(_ context.Context, slug string) (profile.Profile, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()
	prof, ok := mr.profiles[slug]
	if !ok {
		return profile.Blank, repositories.ErrProfileNotFound
	}
	return prof, nil
}

func (mr *Repository) Add(
	_ context.Context,
	prof profile.Profile,
	onConflict func(*profile.Profile) bool,
) (profile.Profile, error) {
	mr.mutex.Lock()
	defer mr.mutex.Unlock()

	existing, exists := mr.profiles[prof.Slug]
	if exists {
		// let the caller decide what to do with the conflict
		resolved := existing
		if !onConflict(&resolved) {
			return profile.Blank, repositories.ErrProfileExists
		}
		prof = resolved
	}

	prof.Version++
	mr.profiles[prof.Slug] = prof

	return prof, nil
}

func (mr *Repository) Remove(_ context.Context, slug string) error {
	mr.mutex.Lock()
	defer mr.mutex.Unlock()
	if _, ok := mr.profiles[slug]; !ok {
		return repositories.ErrProfileNotFound
	}
	delete(mr.profiles, slug)
	return nil
}

func (mr *Repository) List(_ context.Context) ([]profile.Profile, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()
	items := make([]profile.Profile, 0, len(mr.profiles))
	for _, prof := range mr.profiles {
		items = append(items, prof)
	}
	slices.SortFunc(items, func(a, b profile.Profile) int {
		return strings.Compare(a.Slug, b.Slug)
	})
	return items, nil
}

func (mr *Repository) Count(_ context.Context) (int, error) {
	mr.mutex.RLock()
	defer mr.mutex.RUnlock()
	return len(mr.profiles), nil
}
