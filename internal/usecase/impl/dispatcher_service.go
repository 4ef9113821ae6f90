package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
	"geoo/internal/usecase"
)

type dispatcherService struct {
	sink   service.NotificationSink
	logger *slog.Logger
	now    func() time.Time
}

// NewDispatcherService creates a new transition dispatcher instance
func NewDispatcherService(sink service.NotificationSink, logger *slog.Logger) usecase.TransitionUsecase {
	return &dispatcherService{
		sink:   sink,
		logger: logger,
		now:    time.Now,
	}
}

// Dispatch classifies the event. Error events yield nothing, enter and exit
// yield one notification per region in order, anything else yields a single
// error notification.
func (s *dispatcherService) Dispatch(event *entity.TransitionEvent) []*entity.Notification {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	var kind entity.NotificationKind
	switch event.Kind {
	case entity.TransitionError:
		return nil
	case entity.TransitionEnter:
		kind = entity.NotificationEntered
	case entity.TransitionExit:
		kind = entity.NotificationExited
	default:
		return []*entity.Notification{{
			Kind:       entity.NotificationError,
			DeviceID:   event.DeviceID,
			Location:   event.Location,
			Message:    fmt.Sprintf("Invalid transition type - %d", int(event.Kind)),
			OccurredAt: occurredAt,
		}}
	}

	notifications := make([]*entity.Notification, 0, len(event.Regions))
	for _, regionID := range event.Regions {
		notifications = append(notifications, &entity.Notification{
			Kind:       kind,
			RegionID:   regionID,
			DeviceID:   event.DeviceID,
			Location:   event.Location,
			Message:    fmt.Sprintf("User %s with details - %s", kind, regionID),
			OccurredAt: occurredAt,
		})
	}

	return notifications
}

// Handle decodes the payload; a malformed payload is logged and dropped
func (s *dispatcherService) Handle(ctx context.Context, raw []byte) {
	event, err := entity.DecodeTransitionEvent(raw)
	if err != nil {
		s.loggerFor(ctx).Error("Dropped malformed transition event",
			slog.Int("size", len(raw)),
			slog.Any("error", err),
		)

		return
	}

	s.HandleEvent(ctx, event)
}

// HandleEvent delivers notifications to the sink; delivery failures are logged and never retried
func (s *dispatcherService) HandleEvent(ctx context.Context, event *entity.TransitionEvent) {
	logger := s.loggerFor(ctx)

	if event.IsError() {
		logger.Error("Geofence monitoring error",
			slog.String("status", event.ErrorCode.String()),
			slog.Int("error_code", int(event.ErrorCode)),
			slog.String("device_id", event.DeviceID),
		)

		return
	}

	for _, notification := range s.Dispatch(event) {
		if err := s.sink.Notify(ctx, notification); err != nil {
			logger.Error("Failed to deliver notification",
				slog.String("kind", string(notification.Kind)),
				slog.String("region_id", notification.RegionID),
				slog.String("device_id", notification.DeviceID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *dispatcherService) loggerFor(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}
