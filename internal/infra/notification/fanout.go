package notification

import (
	"context"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
	"geoo/internal/errors"

	"golang.org/x/sync/errgroup"
)

// fanoutSink delivers each notification to every sink concurrently.
type fanoutSink struct {
	sinks []service.NotificationSink
}

// NewFanoutSink combines sinks; a single sink is returned unchanged
func NewFanoutSink(sinks ...service.NotificationSink) service.NotificationSink {
	if len(sinks) == 1 {
		return sinks[0]
	}

	return &fanoutSink{sinks: sinks}
}

// Notify waits for all sinks and returns their errors joined. One failing
// sink does not cancel the others.
func (s *fanoutSink) Notify(ctx context.Context, notification *entity.Notification) error {
	var group errgroup.Group
	errs := make([]error, len(s.sinks))

	for idx, sink := range s.sinks {
		group.Go(func() error {
			errs[idx] = sink.Notify(ctx, notification)

			return nil
		})
	}
	_ = group.Wait()

	return errors.Join(errs...)
}
