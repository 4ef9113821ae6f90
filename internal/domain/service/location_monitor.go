package service

import (
	"context"
	"fmt"

	"geoo/internal/domain/entity"
)

// GeofencingRequest is a batch of regions submitted to the monitoring service.
type GeofencingRequest struct {
	Regions        []*entity.Region
	InitialTrigger entity.InitialTrigger
}

// StatusError is returned by a monitoring provider that rejects a request.
type StatusError struct {
	Code   entity.StatusCode
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason == "" {
		return e.Code.String()
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// LocationMonitor is the external location-monitoring service.
// Transitions for accepted regions are delivered to the TransitionPublisher
// the provider was constructed with.
type LocationMonitor interface {
	// AddGeofences starts monitoring the regions. A region with an already
	// monitored ID replaces the previous definition.
	AddGeofences(ctx context.Context, request *GeofencingRequest) error

	// RemoveGeofences stops monitoring the given IDs. Unknown IDs are ignored.
	RemoveGeofences(ctx context.Context, ids []string) error
}

// LocationFeed accepts device positions for the monitoring service.
type LocationFeed interface {
	// PushLocation records a fix and evaluates boundary crossings.
	PushLocation(ctx context.Context, fix *entity.LocationFix) error

	// LastLocation returns the most recent fix, or nil when none is known.
	LastLocation(ctx context.Context, deviceID string) (*entity.LocationFix, error)

	// ReportUnavailable signals that location input was lost.
	ReportUnavailable(ctx context.Context) error
}
