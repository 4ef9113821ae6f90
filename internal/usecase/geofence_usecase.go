package usecase

import (
	"context"

	"geoo/internal/domain/entity"
)

// RegisterGeofenceInput represents the input for registering a geofence.
// Zero values fall back to the configured defaults.
type RegisterGeofenceInput struct {
	ID             string   `json:"id" validate:"required,max=100"`
	Label          string   `json:"label,omitempty" validate:"max=255"`
	Latitude       float64  `json:"latitude" validate:"latitude"`
	Longitude      float64  `json:"longitude" validate:"longitude"`
	Radius         float64  `json:"radius" validate:"gt=0"`
	ExpirationMs   int64    `json:"expiration_ms,omitempty" validate:"gte=0,max=9223372036854"`
	NeverExpire    bool     `json:"never_expire,omitempty"`
	Triggers       []string `json:"triggers" validate:"required,min=1,dive,oneof=enter exit"`
	InitialTrigger []string `json:"initial_trigger,omitempty" validate:"dive,oneof=enter exit none"`
}

// GeofenceUsecase defines the interface for geofence registration use cases
type GeofenceUsecase interface {
	// RegisterGeofence submits the region to the monitor and persists it.
	// An existing region with the same ID is replaced.
	RegisterGeofence(ctx context.Context, input *RegisterGeofenceInput) (*entity.Region, error)

	// UnregisterGeofence stops monitoring and removes the region.
	UnregisterGeofence(ctx context.Context, id string) error

	// GetGeofence returns an active region by ID.
	GetGeofence(ctx context.Context, id string) (*entity.Region, error)

	// ListGeofences returns every active region in registration order.
	ListGeofences(ctx context.Context) ([]*entity.Region, error)

	// RestoreGeofences re-submits persisted regions to the monitor after a restart
	// and returns how many were restored.
	RestoreGeofences(ctx context.Context) (int, error)

	// GeofenceQRCode renders the region's geo URI as a PNG QR code.
	GeofenceQRCode(ctx context.Context, id string) ([]byte, error)
}
