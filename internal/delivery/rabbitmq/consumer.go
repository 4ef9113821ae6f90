// Package rabbitmq consumes transition events from the AMQP fanout exchange.
package rabbitmq

import (
	"context"
	"log/slog"
	"sync"

	"geoo/config"
	"geoo/internal/delivery"
	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/constants"
	"geoo/internal/errors"
	"geoo/internal/infra/pubsub"
	"geoo/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

type consumer struct {
	cfg          *config.RabbitMQConfig
	transitionUC usecase.TransitionUsecase
	logger       *slog.Logger

	mu       sync.Mutex
	conn     *amqp.Connection
	stopping bool
}

// ConsumerParams holds dependencies for the RabbitMQ consumer
type ConsumerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	TransitionUC usecase.TransitionUsecase
}

// NewConsumer creates the RabbitMQ delivery. It stays idle unless the
// rabbitmq provider is configured.
func NewConsumer(params ConsumerParams) delivery.Delivery {
	c := &consumer{
		transitionUC: params.TransitionUC,
		logger:       params.Logger,
	}
	if params.Cfg.PubSub != nil && params.Cfg.PubSub.Provider == constants.PubSubProviderRabbitMQ {
		c.cfg = params.Cfg.RabbitMQ
	}

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c
}

// Serve declares the queue topology and consumes until the connection closes
func (c *consumer) Serve(ctx context.Context) error {
	if c.cfg == nil || c.cfg.URL == "" {
		c.logger.Info("[RabbitMQ] Consumer disabled")

		return nil
	}

	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return errors.Wrap(err, "rabbitmq connect")
	}

	c.mu.Lock()
	if c.stopping {
		c.mu.Unlock()

		return errors.WithStack(conn.Close())
	}
	c.conn = conn
	c.mu.Unlock()

	msgs, err := c.declare(conn)
	if err != nil {
		_ = conn.Close()

		return err
	}

	c.logger.Info("[RabbitMQ] Consuming transitions",
		slog.String("exchange", c.cfg.Exchange),
		slog.String("queue", c.cfg.Queue),
	)

	for msg := range msgs {
		c.handleDelivery(ctx, msg)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopping {
		return nil
	}

	return errors.New("rabbitmq delivery channel closed")
}

func (c *consumer) declare(conn *amqp.Connection) (<-chan amqp.Delivery, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq channel")
	}

	if err := pubsub.DeclareExchange(ch, c.cfg.Exchange); err != nil {
		return nil, err
	}

	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return nil, errors.Wrapf(err, "declare queue %s", c.cfg.Queue)
	}

	if err := ch.QueueBind(c.cfg.Queue, "", c.cfg.Exchange, false, nil); err != nil {
		return nil, errors.Wrapf(err, "bind queue %s", c.cfg.Queue)
	}

	msgs, err := ch.Consume(c.cfg.Queue, "", true, false, false, false, nil)
	if err != nil {
		return nil, errors.Wrap(err, "consume")
	}

	return msgs, nil
}

// handleDelivery hands one message body to the dispatcher. Messages are
// auto-acknowledged so a malformed body is never redelivered.
func (c *consumer) handleDelivery(ctx context.Context, msg amqp.Delivery) {
	header, _ := msg.Headers[deliverycontext.AttrRequestID].(string)
	requestID := deliverycontext.RequestIDOrNew(header)

	reqLogger := c.logger.With(slog.String(deliverycontext.AttrRequestID, requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Debug("[RabbitMQ] Handling transition", slog.String("message_id", msg.MessageId))

	c.transitionUC.Handle(ctx, msg.Body)
}

func (c *consumer) stop(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopping = true
	if c.conn == nil {
		return nil
	}

	c.logger.Info("[RabbitMQ] Closing consumer connection")

	return errors.WithStack(c.conn.Close())
}
