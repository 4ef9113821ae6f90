package rabbitmq

import (
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "geoo/internal/delivery/context"
	mockUsecase "geoo/internal/mocks/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestConsumer(t *testing.T) (*consumer, *mockUsecase.MockTransitionUsecase) {
	t.Helper()

	transitionUC := mockUsecase.NewMockTransitionUsecase(t)

	return &consumer{
		transitionUC: transitionUC,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, transitionUC
}

func TestConsumer_HandleDelivery(t *testing.T) {
	c, transitionUC := newTestConsumer(t)
	body := []byte(`{"transition":2,"triggering_geofences":["10101"]}`)

	transitionUC.EXPECT().
		Handle(mock.Anything, body).
		Run(func(ctx context.Context, _ []byte) {
			assert.Equal(t, "req-7", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return().
		Once()

	c.handleDelivery(context.Background(), amqp.Delivery{
		Headers:   amqp.Table{"request_id": "req-7"},
		MessageId: "m-1",
		Body:      body,
	})
}

func TestConsumer_HandleDelivery_GeneratesRequestID(t *testing.T) {
	c, transitionUC := newTestConsumer(t)

	transitionUC.EXPECT().
		Handle(mock.Anything, []byte("{broken")).
		Run(func(ctx context.Context, _ []byte) {
			assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return().
		Once()

	c.handleDelivery(context.Background(), amqp.Delivery{Body: []byte("{broken")})
}

func TestConsumer_ServeDisabledWithoutConfig(t *testing.T) {
	c, _ := newTestConsumer(t)

	require.NoError(t, c.Serve(context.Background()))
	require.NoError(t, c.stop(context.Background()))
}
