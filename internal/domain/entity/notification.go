package entity

import "time"

// NotificationKind classifies what an observer is told.
type NotificationKind string

const (
	NotificationEntered NotificationKind = "entered"
	NotificationExited  NotificationKind = "exited"
	NotificationError   NotificationKind = "error"
)

// Notification is the output of dispatching a transition event.
type Notification struct {
	Kind       NotificationKind `json:"kind"`
	RegionID   string           `json:"region_id,omitempty"`
	DeviceID   string           `json:"device_id,omitempty"`
	Location   *LatLng          `json:"location,omitempty"`
	Message    string           `json:"message"`
	OccurredAt time.Time        `json:"occurred_at"`
}
