package notification

import (
	"context"
	"fmt"
	"log/slog"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
	"geoo/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the part of *messaging.Client the sink needs.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseSink struct {
	client messageSender
	topic  string
	logger *slog.Logger
}

// NewFirebaseSink creates a sink that pushes every notification to an FCM topic
func NewFirebaseSink(ctx context.Context, credentialsPath, projectID, topic string, logger *slog.Logger) (service.NotificationSink, error) {
	if topic == "" {
		return nil, errors.New("firebase topic is required")
	}

	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseSink(client, topic, logger), nil
}

func newFirebaseSink(client messageSender, topic string, logger *slog.Logger) *firebaseSink {
	return &firebaseSink{
		client: client,
		topic:  topic,
		logger: logger,
	}
}

// Notify sends one topic message; failures are returned, not retried
func (s *firebaseSink) Notify(ctx context.Context, notification *entity.Notification) error {
	messageID, err := s.client.Send(ctx, buildMessage(s.topic, notification))
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("[Firebase] Notification sent",
		slog.String("kind", string(notification.Kind)),
		slog.String("region_id", notification.RegionID),
		slog.String("message_id", messageID),
	)

	return nil
}

func buildMessage(topic string, notification *entity.Notification) *messaging.Message {
	data := map[string]string{
		"kind":      string(notification.Kind),
		"region_id": notification.RegionID,
		"device_id": notification.DeviceID,
	}
	if notification.Location != nil {
		data["latitude"] = fmt.Sprintf("%f", notification.Location.Latitude)
		data["longitude"] = fmt.Sprintf("%f", notification.Location.Longitude)
	}

	return &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title(notification.Kind),
			Body:  notification.Message,
		},
		Data: data,
	}
}

func title(kind entity.NotificationKind) string {
	switch kind {
	case entity.NotificationEntered:
		return "Geofence entered"
	case entity.NotificationExited:
		return "Geofence exited"
	default:
		return "Geofence error"
	}
}
