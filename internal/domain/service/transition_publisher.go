package service

import (
	"context"

	"geoo/internal/domain/entity"
)

// TransitionPublisher is the callback target handed to the monitoring service.
// It is created once per process and stays valid for every region's lifetime.
type TransitionPublisher interface {
	// PublishTransition hands an event to the transport.
	PublishTransition(ctx context.Context, event *entity.TransitionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
