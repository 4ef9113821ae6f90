// Package channel drains the in-process transition channel into the dispatcher.
package channel

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"geoo/config"
	"geoo/internal/delivery"
	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/constants"
	"geoo/internal/domain/entity"
	"geoo/internal/infra/pubsub"
	"geoo/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type consumer struct {
	enabled      bool
	channel      *pubsub.TransitionChannel
	transitionUC usecase.TransitionUsecase
	logger       *slog.Logger

	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// ConsumerParams holds dependencies for the channel consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Channel      *pubsub.TransitionChannel
	TransitionUC usecase.TransitionUsecase
}

// NewConsumer creates the in-process transition consumer. It only runs when
// the channel provider is configured.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	c := newConsumer(params.Channel, params.TransitionUC, params.Logger)
	c.enabled = params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider == constants.PubSubProviderChannel

	params.Lc.Append(fx.Hook{
		OnStop: c.shutdown,
	})

	return c
}

func newConsumer(channel *pubsub.TransitionChannel, transitionUC usecase.TransitionUsecase, logger *slog.Logger) *consumer {
	return &consumer{
		enabled:      true,
		channel:      channel,
		transitionUC: transitionUC,
		logger:       logger,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Serve dispatches events until the channel is closed or the consumer stops
func (c *consumer) Serve(ctx context.Context) error {
	c.started.Store(true)
	defer close(c.done)

	if !c.enabled {
		c.logger.Info("[Channel] Transition channel consumer disabled")

		return nil
	}

	c.logger.Info("Starting transition channel consumer")

	events := c.channel.Events()
	for {
		select {
		case <-c.stop:
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			c.handle(ctx, event)
		}
	}
}

func (c *consumer) handle(ctx context.Context, event *entity.TransitionEvent) {
	requestID := uuid.New().String()
	reqLogger := c.logger.With(slog.String(deliverycontext.AttrRequestID, requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	c.transitionUC.HandleEvent(ctx, event)
}

func (c *consumer) shutdown(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.stop) })

	// done is only closed by Serve
	if !c.enabled || !c.started.Load() {
		return nil
	}

	c.logger.Info("Stopping transition channel consumer")

	select {
	case <-c.done:
	case <-ctx.Done():
	}

	return nil
}
