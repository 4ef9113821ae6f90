// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/errors"
)

// Domain-specific errors for region persistence.
var (
	// ErrRegionNotFound is returned when a region is not found.
	ErrRegionNotFound = errors.New("region not found")
)

// RegionRepository defines the interface for region-related storage operations.
type RegionRepository interface {
	// SaveRegion inserts the region or replaces the stored definition with the same ID.
	SaveRegion(ctx context.Context, region *entity.Region) error

	// DeleteRegion removes a region by its ID.
	// Returns ErrRegionNotFound if nothing was deleted.
	DeleteRegion(ctx context.Context, id string) error

	// FindRegionByID retrieves a region by its ID.
	FindRegionByID(ctx context.Context, id string) (*entity.Region, error)

	// FindActiveRegions retrieves every region that has not expired at now, ordered by registration time.
	FindActiveRegions(ctx context.Context, now time.Time) ([]*entity.Region, error)

	// DeleteExpiredRegions purges regions that expired at or before now and returns how many were removed.
	DeleteExpiredRegions(ctx context.Context, now time.Time) (int64, error)
}
