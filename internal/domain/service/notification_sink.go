package service

import (
	"context"

	"geoo/internal/domain/entity"
)

// NotificationSink receives dispatched notifications.
type NotificationSink interface {
	// Notify delivers a single notification. Implementations must not retry.
	Notify(ctx context.Context, notification *entity.Notification) error
}
