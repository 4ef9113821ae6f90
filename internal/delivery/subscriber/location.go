// Package subscriber ingests device location fixes from an MQTT broker.
package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"geoo/config"
	"geoo/internal/delivery"
	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/entity"
	"geoo/internal/errors"
	"geoo/internal/usecase"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const disconnectQuiesceMs = 250

type locationMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Timestamp int64   `json:"timestamp"`
}

// LocationSubscriber feeds MQTT location messages to the monitor
type LocationSubscriber struct {
	cfg        *config.MQTTConfig
	locationUC usecase.LocationUsecase
	logger     *slog.Logger

	client   mqtt.Client
	stop     chan struct{}
	stopOnce sync.Once
}

// SubscriberParams holds dependencies for the location subscriber
type SubscriberParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	LocationUC usecase.LocationUsecase
}

// NewLocationSubscriber creates the MQTT delivery. It stays idle when mqtt
// is not configured.
func NewLocationSubscriber(params SubscriberParams) delivery.Delivery {
	s := &LocationSubscriber{
		cfg:        params.Cfg.MQTT,
		locationUC: params.LocationUC,
		logger:     params.Logger,
		stop:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

// Serve connects to the broker and blocks until the subscriber stops.
// The subscription is renewed on every (re)connect.
func (s *LocationSubscriber) Serve(ctx context.Context) error {
	if s.cfg == nil || s.cfg.Broker == "" {
		s.logger.Info("[MQTT] Location subscriber disabled")

		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.cfg.Broker).
		SetClientID(s.cfg.ClientID).
		SetUsername(s.cfg.UserName).
		SetPassword(s.cfg.Password).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(client mqtt.Client) {
			s.subscribe(ctx, client)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			s.connectionLost(ctx, err)
		})

	s.client = mqtt.NewClient(opts)
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "mqtt connect")
	}

	s.logger.Info("[MQTT] Connected", slog.String("broker", s.cfg.Broker))

	<-s.stop
	s.client.Disconnect(disconnectQuiesceMs)

	return nil
}

func (s *LocationSubscriber) subscribe(ctx context.Context, client mqtt.Client) {
	token := client.Subscribe(s.cfg.Topic, s.cfg.QoS, s.messageHandler(ctx))
	if token.Wait() && token.Error() != nil {
		s.logger.Error("[MQTT] Subscribe failed",
			slog.String("topic", s.cfg.Topic),
			slog.Any("error", token.Error()),
		)

		return
	}

	s.logger.Info("[MQTT] Subscribed", slog.String("topic", s.cfg.Topic))
}

func (s *LocationSubscriber) messageHandler(ctx context.Context) mqtt.MessageHandler {
	return func(_ mqtt.Client, msg mqtt.Message) {
		s.handleMessage(ctx, msg)
	}
}

// handleMessage reports one fix. Invalid payloads are logged and dropped.
func (s *LocationSubscriber) handleMessage(ctx context.Context, msg mqtt.Message) {
	requestID := uuid.New().String()
	reqLogger := s.logger.With(
		slog.String(deliverycontext.AttrRequestID, requestID),
		slog.String("topic", msg.Topic()),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		reqLogger.Warn("[MQTT] Invalid location message", slog.Any("error", err))

		return
	}

	deviceID := raw.DeviceID
	if deviceID == "" {
		deviceID = deviceFromTopic(s.cfg.Topic, msg.Topic())
	}

	fix := &entity.LocationFix{
		DeviceID: deviceID,
		Position: entity.LatLng{Latitude: raw.Latitude, Longitude: raw.Longitude},
		Accuracy: raw.Accuracy,
	}
	if raw.Timestamp > 0 {
		fix.RecordedAt = time.Unix(raw.Timestamp, 0).UTC()
	}

	if err := s.locationUC.ReportLocation(ctx, fix); err != nil {
		reqLogger.Warn("[MQTT] Dropped location fix",
			slog.String("device_id", deviceID),
			slog.Any("error", err),
		)
	}
}

func (s *LocationSubscriber) connectionLost(ctx context.Context, err error) {
	s.logger.Warn("[MQTT] Connection lost", slog.Any("error", err))

	if reportErr := s.locationUC.ReportUnavailable(ctx); reportErr != nil {
		s.logger.Error("[MQTT] Failed to report location unavailable", slog.Any("error", reportErr))
	}
}

func (s *LocationSubscriber) shutdown(_ context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	return nil
}

// deviceFromTopic returns the segment of topic matched by the first single
// level wildcard of pattern, e.g. /geoo/device/+/location.
func deviceFromTopic(pattern, topic string) string {
	patternParts := strings.Split(pattern, "/")
	topicParts := strings.Split(topic, "/")

	for i, part := range patternParts {
		if part == "+" && i < len(topicParts) {
			return topicParts[i]
		}
	}

	return ""
}
