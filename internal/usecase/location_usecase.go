package usecase

import (
	"context"

	"geoo/internal/domain/entity"
)

// ReportLocationInput represents a location fix reported over HTTP.
type ReportLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty" validate:"gte=0"`
	Timestamp int64   `json:"timestamp,omitempty"` // unix seconds; zero means now
}

// LocationUsecase defines the interface for device location use cases
type LocationUsecase interface {
	// ReportLocation feeds a fix to the monitor.
	ReportLocation(ctx context.Context, fix *entity.LocationFix) error

	// LastLocation returns the most recent fix of a device.
	LastLocation(ctx context.Context, deviceID string) (*entity.LocationFix, error)

	// ReportUnavailable tells the monitor that location input was lost.
	ReportUnavailable(ctx context.Context) error
}
