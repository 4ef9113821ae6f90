package pubsub

import (
	"context"
	"sync"

	"geoo/internal/domain/entity"
	"geoo/internal/errors"
)

// ErrChannelFull is returned when the in-process buffer has no room.
var ErrChannelFull = errors.New("transition channel is full")

// ErrChannelClosed is returned after the channel was closed.
var ErrChannelClosed = errors.New("transition channel is closed")

// TransitionChannel is the in-process transport between the monitor and the
// dispatcher. Publishing never blocks; a full buffer drops the event.
type TransitionChannel struct {
	mu     sync.RWMutex
	events chan *entity.TransitionEvent
	closed bool
}

// NewTransitionChannel creates a channel holding up to size pending events.
func NewTransitionChannel(size int) *TransitionChannel {
	if size <= 0 {
		size = 1
	}

	return &TransitionChannel{
		events: make(chan *entity.TransitionEvent, size),
	}
}

// PublishTransition enqueues the event without waiting.
func (c *TransitionChannel) PublishTransition(_ context.Context, event *entity.TransitionEvent) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrChannelClosed
	}

	select {
	case c.events <- event:
		return nil
	default:
		return errors.WithStack(ErrChannelFull)
	}
}

// Events is drained by the channel delivery. It is closed by Close.
func (c *TransitionChannel) Events() <-chan *entity.TransitionEvent {
	return c.events
}

// Close stops accepting events; pending events stay readable.
func (c *TransitionChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.events)
	}

	return nil
}
