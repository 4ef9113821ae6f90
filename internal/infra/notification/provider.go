// Package notification implements the sinks that receive dispatched geofence notifications.
package notification

import (
	"context"
	"log/slog"

	"geoo/config"
	"geoo/internal/domain/service"

	"go.uber.org/fx"
)

// SinkParams holds dependencies for the notification sink
type SinkParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationSink always logs and also pushes through Firebase when it is configured
func NewNotificationSink(params SinkParams) (service.NotificationSink, error) {
	sinks := []service.NotificationSink{NewLogSink(params.Logger)}

	if fb := params.Config.Firebase; fb != nil && fb.CredentialsPath != "" {
		firebaseSink, err := NewFirebaseSink(params.Ctx, fb.CredentialsPath, fb.ProjectID, fb.Topic, params.Logger)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Firebase notifications enabled", slog.String("topic", fb.Topic))
		sinks = append(sinks, firebaseSink)
	}

	return NewFanoutSink(sinks...), nil
}
