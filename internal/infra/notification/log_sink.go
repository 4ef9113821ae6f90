package notification

import (
	"context"
	"log/slog"

	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
)

// logSink writes notifications to the structured log. Entered and exited
// notifications are INFO, error notifications are ERROR.
type logSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by the logger
func NewLogSink(logger *slog.Logger) service.NotificationSink {
	return &logSink{logger: logger}
}

func (s *logSink) Notify(ctx context.Context, notification *entity.Notification) error {
	attrs := []slog.Attr{
		slog.String("kind", string(notification.Kind)),
		slog.String("region_id", notification.RegionID),
		slog.String("device_id", notification.DeviceID),
	}
	if notification.Location != nil {
		attrs = append(attrs,
			slog.Float64("latitude", notification.Location.Latitude),
			slog.Float64("longitude", notification.Location.Longitude),
		)
	}

	level := slog.LevelInfo
	if notification.Kind == entity.NotificationError {
		level = slog.LevelError
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).LogAttrs(ctx, level, notification.Message, attrs...)

	return nil
}
