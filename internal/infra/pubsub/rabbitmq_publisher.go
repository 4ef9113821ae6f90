package pubsub

import (
	"context"
	"log/slog"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"
	"geoo/internal/errors"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements TransitionPublisher on a durable fanout exchange
type rabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the fanout exchange
func NewRabbitMQPublisher(url, exchange string, logger *slog.Logger) (service.TransitionPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq connect")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq channel")
	}

	if err := DeclareExchange(ch, exchange); err != nil {
		_ = conn.Close()

		return nil, err
	}

	return &rabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// DeclareExchange declares the durable fanout exchange shared by publisher and consumer
func DeclareExchange(ch *amqp.Channel, exchange string) error {
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare exchange %s", exchange)
	}

	return nil
}

// PublishTransition publishes the encoded event to the exchange
func (p *rabbitMQPublisher) PublishTransition(ctx context.Context, event *entity.TransitionEvent) error {
	body, err := event.Encode()
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range transitionAttributes(ctx, event) {
		headers[key] = value
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.New().String(),
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		return errors.Wrap(err, "rabbitmq publish")
	}

	p.logger.Debug("[RabbitMQ] Transition published",
		slog.String("exchange", p.exchange),
		slog.String("transition", event.Kind.String()),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	return errors.Join(p.ch.Close(), p.conn.Close())
}
