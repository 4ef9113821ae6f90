package memory

import (
	"context"
	"testing"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegion(id string, registeredAt time.Time, expiration time.Duration) *entity.Region {
	region := &entity.Region{
		ID:         id,
		Center:     entity.LatLng{Latitude: 18.006372, Longitude: -76.750096},
		Radius:     1000,
		Expiration: expiration,
		Triggers:   entity.NewTransitionSet(entity.TransitionEnter, entity.TransitionExit),
	}
	region.Activate(registeredAt)

	return region
}

func TestRegionRepository_SaveReplacesExistingID(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository()
	now := time.Now()

	require.NoError(t, repo.SaveRegion(ctx, newRegion("10101", now, entity.NeverExpire)))

	replacement := newRegion("10101", now, entity.NeverExpire)
	replacement.Radius = 250
	require.NoError(t, repo.SaveRegion(ctx, replacement))

	found, err := repo.FindRegionByID(ctx, "10101")
	require.NoError(t, err)
	assert.Equal(t, 250.0, found.Radius)

	all, err := repo.FindActiveRegions(ctx, now)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegionRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository()
	region := newRegion("a", time.Now(), entity.NeverExpire)
	require.NoError(t, repo.SaveRegion(ctx, region))

	region.Radius = 1
	found, err := repo.FindRegionByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, found.Radius)
}

func TestRegionRepository_DeleteUnknown(t *testing.T) {
	repo := NewRegionRepository()

	err := repo.DeleteRegion(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}

func TestRegionRepository_ActiveAndExpired(t *testing.T) {
	ctx := context.Background()
	repo := NewRegionRepository()
	base := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveRegion(ctx, newRegion("late", base.Add(time.Minute), entity.NeverExpire)))
	require.NoError(t, repo.SaveRegion(ctx, newRegion("early", base, entity.NeverExpire)))
	require.NoError(t, repo.SaveRegion(ctx, newRegion("short", base, 100*time.Second)))

	active, err := repo.FindActiveRegions(ctx, base.Add(2*time.Minute))
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "early", active[0].ID)
	assert.Equal(t, "late", active[1].ID)

	removed, err := repo.DeleteExpiredRegions(ctx, base.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.FindRegionByID(ctx, "short")
	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}
