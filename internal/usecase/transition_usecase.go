package usecase

import (
	"context"

	"geoo/internal/domain/entity"
)

// TransitionUsecase routes transition events from the monitoring service to observers.
type TransitionUsecase interface {
	// Dispatch maps an event to the notifications it produces. It has no side effects.
	Dispatch(event *entity.TransitionEvent) []*entity.Notification

	// Handle decodes a raw callback payload and delivers its notifications.
	Handle(ctx context.Context, raw []byte)

	// HandleEvent delivers the notifications of an already decoded event.
	HandleEvent(ctx context.Context, event *entity.TransitionEvent)
}
