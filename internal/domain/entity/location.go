package entity

import (
	"strings"
	"time"

	domainerrors "geoo/internal/domain/errors"
)

// LocationFix is a single position report from a device.
type LocationFix struct {
	DeviceID   string    `json:"device_id"`
	Position   LatLng    `json:"position"`
	Accuracy   float64   `json:"accuracy,omitempty"` // meters
	RecordedAt time.Time `json:"recorded_at"`
}

// Validate checks the device id and coordinate ranges.
func (f *LocationFix) Validate() error {
	if strings.TrimSpace(f.DeviceID) == "" {
		return domainerrors.ErrInvalidLocation.WithDetails("device_id: required")
	}
	if err := f.Position.Validate(); err != nil {
		return domainerrors.ErrInvalidLocation.WithDetails(err.Error())
	}
	if f.Accuracy < 0 {
		return domainerrors.ErrInvalidLocation.WithDetails("accuracy: must not be negative")
	}

	return nil
}
