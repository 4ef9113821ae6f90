package entity

import (
	"encoding/json"
	"strconv"
	"time"

	domainerrors "geoo/internal/domain/errors"
)

// StatusCode mirrors the platform geofence status codes.
type StatusCode int

const (
	StatusGeofenceNotAvailable           StatusCode = 1000
	StatusTooManyGeofences               StatusCode = 1001
	StatusTooManyPendingIntents          StatusCode = 1002
	StatusInsufficientLocationPermission StatusCode = 1004
	StatusRequestTooFrequent             StatusCode = 1005
)

func (c StatusCode) String() string {
	switch c {
	case StatusGeofenceNotAvailable:
		return "GEOFENCE_NOT_AVAILABLE"
	case StatusTooManyGeofences:
		return "GEOFENCE_TOO_MANY_GEOFENCES"
	case StatusTooManyPendingIntents:
		return "GEOFENCE_TOO_MANY_PENDING_INTENTS"
	case StatusInsufficientLocationPermission:
		return "GEOFENCE_INSUFFICIENT_LOCATION_PERMISSION"
	case StatusRequestTooFrequent:
		return "GEOFENCE_REQUEST_TOO_FREQUENT"
	default:
		return "unknown status code: " + strconv.Itoa(int(c))
	}
}

// TransitionEvent is delivered asynchronously by the monitoring service.
type TransitionEvent struct {
	Kind       TransitionKind
	Regions    []string
	ErrorCode  StatusCode
	DeviceID   string
	Location   *LatLng
	OccurredAt time.Time
}

// IsError reports whether the event carries a monitoring failure.
func (e *TransitionEvent) IsError() bool {
	return e.Kind == TransitionError
}

type transitionEventWire struct {
	HasError            bool       `json:"has_error"`
	ErrorCode           int        `json:"error_code,omitempty"`
	Transition          *int       `json:"transition,omitempty"`
	TriggeringGeofences []string   `json:"triggering_geofences,omitempty"`
	DeviceID            string     `json:"device_id,omitempty"`
	TriggeringLocation  *LatLng    `json:"triggering_location,omitempty"`
	OccurredAt          *time.Time `json:"occurred_at,omitempty"`
}

// DecodeTransitionEvent parses the callback payload. Unknown transition
// values are preserved; only structurally broken payloads fail.
func DecodeTransitionEvent(data []byte) (*TransitionEvent, error) {
	var wire transitionEventWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, domainerrors.ErrMalformedEvent.WithDetails(err.Error())
	}

	event := &TransitionEvent{
		DeviceID: wire.DeviceID,
		Location: wire.TriggeringLocation,
	}
	if wire.OccurredAt != nil {
		event.OccurredAt = *wire.OccurredAt
	}

	if wire.HasError {
		if len(wire.TriggeringGeofences) > 0 {
			return nil, domainerrors.ErrMalformedEvent.WithDetails("error event must not list triggering geofences")
		}
		event.Kind = TransitionError
		event.ErrorCode = StatusCode(wire.ErrorCode)

		return event, nil
	}

	if wire.Transition == nil {
		return nil, domainerrors.ErrMalformedEvent.WithDetails("transition: required")
	}
	event.Kind = TransitionKind(*wire.Transition)
	event.Regions = wire.TriggeringGeofences

	return event, nil
}

// Encode renders the event in the callback wire format.
func (e *TransitionEvent) Encode() ([]byte, error) {
	wire := transitionEventWire{
		DeviceID:           e.DeviceID,
		TriggeringLocation: e.Location,
	}
	if !e.OccurredAt.IsZero() {
		occurredAt := e.OccurredAt.UTC()
		wire.OccurredAt = &occurredAt
	}

	if e.IsError() {
		wire.HasError = true
		wire.ErrorCode = int(e.ErrorCode)
	} else {
		kind := int(e.Kind)
		wire.Transition = &kind
		wire.TriggeringGeofences = e.Regions
	}

	return json.Marshal(wire)
}
