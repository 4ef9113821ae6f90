// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"geoo/internal/domain/entity"
	domainerrors "geoo/internal/domain/errors"
	"geoo/internal/domain/repository"
	"geoo/internal/errors"
	"geoo/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// regionRepository implements the repository.RegionRepository interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// SaveRegion inserts the region, replacing any stored row with the same ID.
func (repo *regionRepository) SaveRegion(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(regionM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRegion.WrapMessage("region rejected by storage constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save region")
	}

	return nil
}

// upsertColumns are overwritten when a region ID is registered again.
var upsertColumns = []string{
	"label",
	"latitude",
	"longitude",
	"radius_meters",
	"expiration_ms",
	"triggers",
	"initial_trigger",
	"registered_at",
	"expires_at",
	"updated_at",
}

// DeleteRegion removes a region by its ID.
func (repo *regionRepository) DeleteRegion(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RegionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete region")
	}

	// If no rows were affected, it means the region was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// FindRegionByID retrieves a region by its ID.
func (repo *regionRepository) FindRegionByID(ctx context.Context, id string) (*entity.Region, error) {
	var regionM model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&regionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by ID")
	}

	return toRegionDomain(&regionM), nil
}

// FindActiveRegions retrieves regions that have not expired at now.
func (repo *regionRepository) FindActiveRegions(ctx context.Context, now time.Time) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel
	err := repo.db.WithContext(ctx).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("registered_at ASC").
		Find(&regionModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, nil
}

// DeleteExpiredRegions purges regions that expired at or before now.
func (repo *regionRepository) DeleteExpiredRegions(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&model.RegionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired regions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toRegionDomain converts a GORM RegionModel to a domain Region entity.
func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	expiration, err := entity.ExpirationFromMillis(data.ExpirationMs)
	if err != nil {
		// Out of range rows are read as never expiring rather than wrapping around
		expiration = entity.NeverExpire
	}

	return &entity.Region{
		ID:    data.ID,
		Label: data.Label,
		Center: entity.LatLng{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		Radius:         data.RadiusMeters,
		Expiration:     expiration,
		Triggers:       entity.TransitionSet(data.Triggers),
		InitialTrigger: entity.InitialTrigger(data.InitialTrigger),
		RegisteredAt:   data.RegisteredAt,
		ExpiresAt:      data.ExpiresAt,
	}
}

// fromRegionDomain converts a domain Region entity to a GORM RegionModel.
func fromRegionDomain(data *entity.Region) *model.RegionModel {
	if data == nil {
		return nil
	}

	expirationMs := int64(-1)
	if !data.NeverExpires() {
		expirationMs = data.Expiration.Milliseconds()
	}

	return &model.RegionModel{
		ID:             data.ID,
		Label:          data.Label,
		Latitude:       data.Center.Latitude,
		Longitude:      data.Center.Longitude,
		RadiusMeters:   data.Radius,
		ExpirationMs:   expirationMs,
		Triggers:       int(data.Triggers),
		InitialTrigger: int(data.InitialTrigger),
		RegisteredAt:   data.RegisteredAt,
		ExpiresAt:      data.ExpiresAt,
	}
}
