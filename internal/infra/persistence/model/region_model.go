package model

import (
	"time"
)

// RegionModel is the GORM-specific struct for the 'geofence_regions' table.
type RegionModel struct {
	ID             string     `gorm:"type:varchar(100);primaryKey"`
	Label          string     `gorm:"type:varchar(255)"`
	Latitude       float64    `gorm:"type:decimal(10,8);not null"`
	Longitude      float64    `gorm:"type:decimal(11,8);not null"`
	RadiusMeters   float64    `gorm:"not null"`
	ExpirationMs   int64      `gorm:"not null"` // -1 never expires
	Triggers       int        `gorm:"not null"`
	InitialTrigger int        `gorm:"not null"`
	RegisteredAt   time.Time  `gorm:"not null;index:idx_geofence_regions_registered_at"`
	ExpiresAt      *time.Time `gorm:"index:idx_geofence_regions_expires_at"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "geofence_regions"
}

// Models lists every table managed by AutoMigrate.
func Models() []any {
	return []any{&RegionModel{}}
}
