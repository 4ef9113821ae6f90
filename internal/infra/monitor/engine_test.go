package monitor

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	uwi     = entity.LatLng{Latitude: 18.006372, Longitude: -76.750096}
	nearUWI = entity.LatLng{Latitude: 18.0100, Longitude: -76.7500} // ~400 m north
	faraway = entity.LatLng{Latitude: 18.1000, Longitude: -76.7500} // ~10 km north
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []*entity.TransitionEvent
	err    error
}

func (p *recordingPublisher) PublishTransition(_ context.Context, event *entity.TransitionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) take() []*entity.TransitionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := p.events
	p.events = nil

	return events
}

func newTestEngine(opts Options) (*Engine, *recordingPublisher) {
	publisher := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEngine(publisher, logger, opts), publisher
}

func region(id string, center entity.LatLng, radius float64, kinds ...entity.TransitionKind) *entity.Region {
	r := &entity.Region{
		ID:         id,
		Center:     center,
		Radius:     radius,
		Expiration: entity.NeverExpire,
		Triggers:   entity.NewTransitionSet(kinds...),
	}
	r.Activate(time.Now())

	return r
}

func request(trigger entity.InitialTrigger, regions ...*entity.Region) *service.GeofencingRequest {
	return &service.GeofencingRequest{Regions: regions, InitialTrigger: trigger}
}

func fix(deviceID string, p entity.LatLng) *entity.LocationFix {
	return &entity.LocationFix{DeviceID: deviceID, Position: p, RecordedAt: time.Now()}
}

func TestEngine_EnterThenExit(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})

	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerEnter,
		region("10101", uwi, 1000, entity.TransitionEnter, entity.TransitionExit))))
	assert.Empty(t, publisher.take(), "no device positions known yet")

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", faraway)))
	assert.Empty(t, publisher.take())

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", nearUWI)))
	events := publisher.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.TransitionEnter, events[0].Kind)
	assert.Equal(t, []string{"10101"}, events[0].Regions)
	assert.Equal(t, "pixel-7", events[0].DeviceID)
	require.NotNil(t, events[0].Location)
	assert.Equal(t, nearUWI, *events[0].Location)

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	assert.Empty(t, publisher.take(), "moving inside the region is not a crossing")

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", faraway)))
	events = publisher.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.TransitionExit, events[0].Kind)
	assert.Equal(t, []string{"10101"}, events[0].Regions)
}

func TestEngine_EnterListsRegionsInRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})

	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("B", uwi, 2000, entity.TransitionEnter))))
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("A", uwi, 1000, entity.TransitionEnter))))

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))

	events := publisher.take()
	require.Len(t, events, 1)
	assert.Equal(t, []string{"B", "A"}, events[0].Regions)
}

func TestEngine_TriggersFilterKinds(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})

	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("enter-only", uwi, 1000, entity.TransitionEnter))))

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	require.Len(t, publisher.take(), 1)

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", faraway)))
	assert.Empty(t, publisher.take())
}

func TestEngine_InitialTrigger(t *testing.T) {
	tests := []struct {
		name     string
		trigger  entity.InitialTrigger
		position entity.LatLng
		wantKind entity.TransitionKind
		wantNone bool
	}{
		{name: "enter fires for device inside", trigger: entity.InitialTriggerEnter, position: uwi, wantKind: entity.TransitionEnter},
		{name: "enter is silent for device outside", trigger: entity.InitialTriggerEnter, position: faraway, wantNone: true},
		{name: "exit fires for device outside", trigger: entity.InitialTriggerExit, position: faraway, wantKind: entity.TransitionExit},
		{name: "none is silent", trigger: entity.InitialTriggerNone, position: uwi, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			engine, publisher := newTestEngine(Options{})
			require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", tt.position)))

			require.NoError(t, engine.AddGeofences(ctx, request(tt.trigger,
				region("10101", uwi, 1000, entity.TransitionEnter, entity.TransitionExit))))

			events := publisher.take()
			if tt.wantNone {
				assert.Empty(t, events)

				return
			}
			require.Len(t, events, 1)
			assert.Equal(t, tt.wantKind, events[0].Kind)
			assert.Equal(t, []string{"10101"}, events[0].Regions)
		})
	}
}

func TestEngine_SilentInitialStateStillTracksInsideness(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})
	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))

	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("10101", uwi, 1000, entity.TransitionEnter, entity.TransitionExit))))
	assert.Empty(t, publisher.take())

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", faraway)))
	events := publisher.take()
	require.Len(t, events, 1)
	assert.Equal(t, entity.TransitionExit, events[0].Kind)
}

func TestEngine_MaxRegions(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(Options{MaxRegions: 2})

	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("a", uwi, 10, entity.TransitionEnter),
		region("b", uwi, 10, entity.TransitionEnter))))

	err := engine.AddGeofences(ctx, request(entity.InitialTriggerNone, region("c", uwi, 10, entity.TransitionEnter)))
	var statusErr *service.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, entity.StatusTooManyGeofences, statusErr.Code)

	// replacing an existing ID does not count against the limit
	assert.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone, region("a", uwi, 20, entity.TransitionEnter))))
	assert.Equal(t, []string{"b", "a"}, engine.MonitoredRegions())
}

func TestEngine_EmptyRequest(t *testing.T) {
	engine, _ := newTestEngine(Options{})

	err := engine.AddGeofences(context.Background(), request(entity.InitialTriggerEnter))

	var statusErr *service.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, entity.StatusGeofenceNotAvailable, statusErr.Code)
}

func TestEngine_RemoveGeofences(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("10101", uwi, 1000, entity.TransitionEnter, entity.TransitionExit))))
	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	publisher.take()

	require.NoError(t, engine.RemoveGeofences(ctx, []string{"10101", "unknown"}))
	assert.Empty(t, engine.MonitoredRegions())

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", faraway)))
	assert.Empty(t, publisher.take())
}

func TestEngine_SweepExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	engine, publisher := newTestEngine(Options{Now: func() time.Time { return now }})

	short := region("short", uwi, 1000, entity.TransitionEnter)
	short.Expiration = 100 * time.Second
	short.Activate(now)
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		short, region("forever", uwi, 1000, entity.TransitionEnter))))

	assert.Empty(t, engine.SweepExpired(now.Add(99*time.Second)))
	assert.Equal(t, []string{"short"}, engine.SweepExpired(now.Add(100*time.Second)))
	assert.Equal(t, []string{"forever"}, engine.MonitoredRegions())

	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	events := publisher.take()
	require.Len(t, events, 1)
	assert.Equal(t, []string{"forever"}, events[0].Regions)
}

func TestEngine_ExpiredRegionIgnoredBeforeSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)
	current := now
	engine, publisher := newTestEngine(Options{Now: func() time.Time { return current }})

	short := region("short", uwi, 1000, entity.TransitionEnter)
	short.Expiration = time.Minute
	short.Activate(now)
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone, short)))

	current = now.Add(2 * time.Minute)
	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	assert.Empty(t, publisher.take())
}

func TestEngine_ReportUnavailable(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("10101", uwi, 1000, entity.TransitionEnter))))
	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	publisher.take()

	require.NoError(t, engine.ReportUnavailable(ctx))

	events := publisher.take()
	require.Len(t, events, 1)
	assert.True(t, events[0].IsError())
	assert.Equal(t, entity.StatusGeofenceNotAvailable, events[0].ErrorCode)
	assert.Empty(t, events[0].Regions)

	last, err := engine.LastLocation(ctx, "pixel-7")
	require.NoError(t, err)
	assert.Nil(t, last)
	assert.Equal(t, []string{"10101"}, engine.MonitoredRegions())

	// the device is treated as new, so being inside reports ENTER again
	require.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	require.Len(t, publisher.take(), 1)
}

func TestEngine_LastLocation(t *testing.T) {
	ctx := context.Background()
	engine, _ := newTestEngine(Options{})

	last, err := engine.LastLocation(ctx, "pixel-7")
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, engine.PushLocation(ctx, &entity.LocationFix{DeviceID: "pixel-7", Position: uwi, Accuracy: 12}))

	last, err = engine.LastLocation(ctx, "pixel-7")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, uwi, last.Position)
	assert.Equal(t, 12.0, last.Accuracy)
	assert.False(t, last.RecordedAt.IsZero())
}

func TestEngine_PublishFailureDoesNotFailFix(t *testing.T) {
	ctx := context.Background()
	engine, publisher := newTestEngine(Options{})
	publisher.err = assert.AnError
	require.NoError(t, engine.AddGeofences(ctx, request(entity.InitialTriggerNone,
		region("10101", uwi, 1000, entity.TransitionEnter))))

	assert.NoError(t, engine.PushLocation(ctx, fix("pixel-7", uwi)))
	assert.Len(t, publisher.take(), 1)
}

func TestEngine_RunStopsOnCancel(t *testing.T) {
	engine, _ := newTestEngine(Options{SweepInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		engine.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
