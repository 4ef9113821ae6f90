package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"geoo/internal/domain/entity"
	domainerrors "geoo/internal/domain/errors"
	"geoo/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

var regionColumns = []string{
	"id", "label", "latitude", "longitude", "radius_meters", "expiration_ms",
	"triggers", "initial_trigger", "registered_at", "expires_at", "created_at", "updated_at",
}

func TestRegionRepository_SaveRegion_Upserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	region := &entity.Region{
		ID:         "10101",
		Label:      "UWI - Department of Computing",
		Center:     entity.LatLng{Latitude: 18.006372, Longitude: -76.750096},
		Radius:     1000,
		Expiration: 100 * time.Second,
		Triggers:   entity.NewTransitionSet(entity.TransitionEnter, entity.TransitionExit),
	}
	region.Activate(time.Now())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "geofence_regions"`) + `.*ON CONFLICT \("id"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveRegion(context.Background(), region)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepository_SaveRegion_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	region := &entity.Region{ID: "a", Radius: 10, Expiration: entity.NeverExpire, Triggers: 1}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "geofence_regions"`)).
		WillReturnError(assert.AnError)

	err := repo.SaveRegion(context.Background(), region)

	var dbErr *domainerrors.DatabaseExecuteError
	require.ErrorAs(t, err, &dbErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestRegionRepository_FindRegionByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)
	registeredAt := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(regionColumns).
		AddRow("10101", "UWI", 18.006372, -76.750096, 1000.0, int64(-1), 3, 1, registeredAt, nil, registeredAt, registeredAt)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "geofence_regions" WHERE id = $1`)).
		WillReturnRows(rows)

	region, err := repo.FindRegionByID(context.Background(), "10101")

	require.NoError(t, err)
	assert.Equal(t, "10101", region.ID)
	assert.Equal(t, entity.NeverExpire, region.Expiration)
	assert.True(t, region.Triggers.Has(entity.TransitionExit))
	assert.Equal(t, entity.InitialTriggerEnter, region.InitialTrigger)
	assert.Nil(t, region.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepository_FindRegionByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "geofence_regions"`)).
		WillReturnRows(sqlmock.NewRows(regionColumns))

	_, err := repo.FindRegionByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrRegionNotFound)
}

func TestRegionRepository_FindActiveRegions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	expiresAt := now.Add(time.Minute)

	rows := sqlmock.NewRows(regionColumns).
		AddRow("a", "", 1.0, 2.0, 50.0, int64(120000), 1, 0, now, expiresAt, now, now).
		AddRow("b", "", 3.0, 4.0, 75.0, int64(-1), 2, 0, now, nil, now, now)
	mock.ExpectQuery(`SELECT \* FROM "geofence_regions" WHERE .*expires_at IS NULL OR expires_at > \$1.*ORDER BY registered_at ASC`).
		WillReturnRows(rows)

	regions, err := repo.FindActiveRegions(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, 2*time.Minute, regions[0].Expiration)
	require.NotNil(t, regions[0].ExpiresAt)
	assert.True(t, regions[0].ExpiresAt.Equal(expiresAt))
	assert.Equal(t, entity.NeverExpire, regions[1].Expiration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepository_DeleteRegion(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, wantErr: repository.ErrRegionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewRegionRepository(db)

			mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "geofence_regions" WHERE id = $1`)).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err := repo.DeleteRegion(context.Background(), "10101")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegionRepository_DeleteExpiredRegions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRegionRepository(db)

	mock.ExpectExec(`DELETE FROM "geofence_regions" WHERE .*expires_at IS NOT NULL AND expires_at <= \$1`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteExpiredRegions(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
