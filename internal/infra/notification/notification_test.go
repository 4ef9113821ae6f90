package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enteredNotification() *entity.Notification {
	return &entity.Notification{
		Kind:     entity.NotificationEntered,
		RegionID: "10101",
		DeviceID: "pixel-7",
		Location: &entity.LatLng{Latitude: 18.006372, Longitude: -76.750096},
		Message:  "User entered",
	}
}

func TestLogSink_Levels(t *testing.T) {
	tests := []struct {
		name      string
		kind      entity.NotificationKind
		wantLevel string
	}{
		{name: "entered", kind: entity.NotificationEntered, wantLevel: "INFO"},
		{name: "exited", kind: entity.NotificationExited, wantLevel: "INFO"},
		{name: "error", kind: entity.NotificationError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewLogSink(slog.New(slog.NewJSONHandler(&buf, nil)))
			notification := enteredNotification()
			notification.Kind = tt.kind

			require.NoError(t, sink.Notify(context.Background(), notification))

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Equal(t, "User entered", record["msg"])
			assert.Equal(t, "10101", record["region_id"])
			assert.Equal(t, "pixel-7", record["device_id"])
		})
	}
}

type fakeSender struct {
	messages []*messaging.Message
	err      error
}

func (s *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.messages = append(s.messages, message)
	if s.err != nil {
		return "", s.err
	}

	return "projects/geoo/messages/1", nil
}

func TestFirebaseSink_SendsTopicMessage(t *testing.T) {
	sender := &fakeSender{}
	sink := newFirebaseSink(sender, "geofence-transitions", slog.New(slog.DiscardHandler))

	require.NoError(t, sink.Notify(context.Background(), enteredNotification()))

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "geofence-transitions", msg.Topic)
	assert.Equal(t, "Geofence entered", msg.Notification.Title)
	assert.Equal(t, "User entered", msg.Notification.Body)
	assert.Equal(t, "entered", msg.Data["kind"])
	assert.Equal(t, "10101", msg.Data["region_id"])
	assert.Equal(t, "pixel-7", msg.Data["device_id"])
	assert.Equal(t, "18.006372", msg.Data["latitude"])
}

func TestFirebaseSink_ReturnsSendError(t *testing.T) {
	sender := &fakeSender{err: assert.AnError}
	sink := newFirebaseSink(sender, "t", slog.New(slog.DiscardHandler))

	err := sink.Notify(context.Background(), enteredNotification())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Len(t, sender.messages, 1, "no retry")
}

type countingSink struct {
	calls atomic.Int32
	err   error
}

func (s *countingSink) Notify(context.Context, *entity.Notification) error {
	s.calls.Add(1)

	return s.err
}

func TestFanoutSink_DeliversToAllAndJoinsErrors(t *testing.T) {
	errA := errors.New("sink a down")
	a := &countingSink{err: errA}
	b := &countingSink{}
	c := &countingSink{}

	err := NewFanoutSink(a, b, c).Notify(context.Background(), enteredNotification())

	assert.ErrorIs(t, err, errA)
	assert.EqualValues(t, 1, a.calls.Load())
	assert.EqualValues(t, 1, b.calls.Load())
	assert.EqualValues(t, 1, c.calls.Load())
}

func TestFanoutSink_SingleSinkUnwrapped(t *testing.T) {
	only := &countingSink{}

	var sink service.NotificationSink = NewFanoutSink(only)

	assert.Same(t, only, sink)
}
