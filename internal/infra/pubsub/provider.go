package pubsub

import (
	"context"
	"log/slog"

	"geoo/config"
	"geoo/internal/domain/constants"
	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
	"geoo/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when no transport is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishTransition(_ context.Context, event *entity.TransitionEvent) error {
	p.logger.Debug("[NoopPubSub] Transition transport disabled, dropping event",
		slog.String("transition", event.Kind.String()),
		slog.Any("region_ids", event.Regions),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NewTransitionChannelFromConfig sizes the in-process channel from pubsub.bufferSize
func NewTransitionChannelFromConfig(cfg *config.Config) *TransitionChannel {
	size := 0
	if cfg.PubSub != nil {
		size = cfg.PubSub.BufferSize
	}

	return NewTransitionChannel(size)
}

// PublisherParams holds dependencies for TransitionPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Channel *TransitionChannel
}

// NewTransitionPublisher creates the monitor's callback target based on configuration
func NewTransitionPublisher(params PublisherParams) (service.TransitionPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.TransitionPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderChannel:
		logger.Info("Using in-process channel for transitions", slog.Int("buffer_size", cfg.BufferSize))

		publisher = params.Channel

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderRabbitMQ:
		rabbit := params.Config.RabbitMQ
		if rabbit == nil || rabbit.URL == "" || rabbit.Exchange == "" {
			return nil, errors.New("rabbitmq url and exchange are required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher", slog.String("exchange", rabbit.Exchange))

		publisher, err = NewRabbitMQPublisher(rabbit.URL, rabbit.Exchange, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing TransitionPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the transition transport FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTransitionChannelFromConfig,
		NewTransitionPublisher,
	),
)
