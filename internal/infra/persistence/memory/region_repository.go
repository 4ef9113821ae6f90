// Package memory keeps regions in process memory when no database is configured.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/repository"
)

type regionRepository struct {
	mu      sync.RWMutex
	regions map[string]*entity.Region
}

// NewRegionRepository creates an empty in-memory region store.
func NewRegionRepository() repository.RegionRepository {
	return &regionRepository{
		regions: make(map[string]*entity.Region),
	}
}

func (repo *regionRepository) SaveRegion(_ context.Context, region *entity.Region) error {
	stored := *region

	repo.mu.Lock()
	repo.regions[region.ID] = &stored
	repo.mu.Unlock()

	return nil
}

func (repo *regionRepository) DeleteRegion(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.regions[id]; !ok {
		return repository.ErrRegionNotFound
	}
	delete(repo.regions, id)

	return nil
}

func (repo *regionRepository) FindRegionByID(_ context.Context, id string) (*entity.Region, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	region, ok := repo.regions[id]
	if !ok {
		return nil, repository.ErrRegionNotFound
	}
	found := *region

	return &found, nil
}

func (repo *regionRepository) FindActiveRegions(_ context.Context, now time.Time) ([]*entity.Region, error) {
	repo.mu.RLock()
	active := make([]*entity.Region, 0, len(repo.regions))
	for _, region := range repo.regions {
		if region.IsExpired(now) {
			continue
		}
		found := *region
		active = append(active, &found)
	}
	repo.mu.RUnlock()

	slices.SortStableFunc(active, func(a, b *entity.Region) int {
		if c := a.RegisteredAt.Compare(b.RegisteredAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return active, nil
}

func (repo *regionRepository) DeleteExpiredRegions(_ context.Context, now time.Time) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var removed int64
	for id, region := range repo.regions {
		if region.IsExpired(now) {
			delete(repo.regions, id)
			removed++
		}
	}

	return removed, nil
}
