package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	event := &entity.TransitionEvent{
		Kind:     entity.TransitionEnter,
		Regions:  []string{"10101"},
		DeviceID: "pixel-7",
	}

	require.NoError(t, publisher.PublishTransition(ctx, event))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "req-42", received.Message.Attributes["request_id"])
	assert.Equal(t, "enter", received.Message.Attributes["transition"])
	assert.Equal(t, "10101", received.Message.Attributes["region_ids"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	decoded, err := entity.DecodeTransitionEvent(data)
	require.NoError(t, err)
	assert.Equal(t, entity.TransitionEnter, decoded.Kind)
	assert.Equal(t, []string{"10101"}, decoded.Regions)
	assert.Equal(t, "pixel-7", decoded.DeviceID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishTransition(context.Background(), &entity.TransitionEvent{Kind: entity.TransitionExit})

	assert.ErrorContains(t, err, "503")
}
