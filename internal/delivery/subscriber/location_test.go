package subscriber

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"geoo/config"
	"geoo/internal/domain/entity"
	mockUsecase "geoo/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 1 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

func newTestSubscriber(t *testing.T) (*LocationSubscriber, *mockUsecase.MockLocationUsecase) {
	t.Helper()

	locationUC := mockUsecase.NewMockLocationUsecase(t)

	return &LocationSubscriber{
		cfg:        &config.MQTTConfig{Topic: "/geoo/device/+/location"},
		locationUC: locationUC,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		stop:       make(chan struct{}),
	}, locationUC
}

func TestLocationSubscriber_HandleMessage(t *testing.T) {
	s, locationUC := newTestSubscriber(t)

	locationUC.EXPECT().
		ReportLocation(mock.Anything, &entity.LocationFix{
			DeviceID:   "pixel-7",
			Position:   entity.LatLng{Latitude: 18.006, Longitude: -76.7495},
			Accuracy:   12,
			RecordedAt: time.Unix(1773480600, 0).UTC(),
		}).
		Return(nil).
		Once()

	s.handleMessage(context.Background(), &fakeMessage{
		topic:   "/geoo/device/ignored/location",
		payload: []byte(`{"device_id":"pixel-7","latitude":18.006,"longitude":-76.7495,"accuracy":12,"timestamp":1773480600}`),
	})
}

func TestLocationSubscriber_HandleMessage_DeviceFromTopic(t *testing.T) {
	s, locationUC := newTestSubscriber(t)

	locationUC.EXPECT().
		ReportLocation(mock.Anything, mock.MatchedBy(func(fix *entity.LocationFix) bool {
			return fix.DeviceID == "pixel-7" && fix.RecordedAt.IsZero()
		})).
		Return(nil).
		Once()

	s.handleMessage(context.Background(), &fakeMessage{
		topic:   "/geoo/device/pixel-7/location",
		payload: []byte(`{"latitude":18.006,"longitude":-76.7495}`),
	})
}

func TestLocationSubscriber_HandleMessage_InvalidPayloadDropped(t *testing.T) {
	s, locationUC := newTestSubscriber(t)

	s.handleMessage(context.Background(), &fakeMessage{
		topic:   "/geoo/device/pixel-7/location",
		payload: []byte(`{"latitude":`),
	})

	locationUC.AssertNotCalled(t, "ReportLocation", mock.Anything, mock.Anything)
}

func TestLocationSubscriber_HandleMessage_RejectedFixIsLogged(t *testing.T) {
	s, locationUC := newTestSubscriber(t)

	locationUC.EXPECT().
		ReportLocation(mock.Anything, mock.Anything).
		Return(errors.New("invalid location")).
		Once()

	s.handleMessage(context.Background(), &fakeMessage{
		topic:   "/geoo/device/pixel-7/location",
		payload: []byte(`{"latitude":95,"longitude":0}`),
	})
}

func TestLocationSubscriber_ConnectionLost(t *testing.T) {
	s, locationUC := newTestSubscriber(t)

	locationUC.EXPECT().ReportUnavailable(mock.Anything).Return(nil).Once()

	s.connectionLost(context.Background(), errors.New("broker went away"))
}

func TestLocationSubscriber_ServeDisabled(t *testing.T) {
	s, _ := newTestSubscriber(t)
	s.cfg = nil

	require.NoError(t, s.Serve(context.Background()))
	require.NoError(t, s.shutdown(context.Background()))
}

func TestDeviceFromTopic(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    string
	}{
		{pattern: "/geoo/device/+/location", topic: "/geoo/device/pixel-7/location", want: "pixel-7"},
		{pattern: "geoo/+/fix", topic: "geoo/d1/fix", want: "d1"},
		{pattern: "/geoo/device/location", topic: "/geoo/device/location", want: ""},
		{pattern: "/geoo/device/+/location", topic: "/geoo", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			assert.Equal(t, tt.want, deviceFromTopic(tt.pattern, tt.topic))
		})
	}
}
