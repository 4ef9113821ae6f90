package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"geoo/internal/domain/entity"
	"geoo/internal/domain/repository"
	"geoo/internal/infra/monitor"
	"geoo/internal/infra/persistence/memory"
	"geoo/internal/infra/pubsub"
	"geoo/internal/infra/qrcode"
	mockService "geoo/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, channel *pubsub.TransitionChannel) *entity.TransitionEvent {
	t.Helper()

	select {
	case event := <-channel.Events():
		return event
	case <-time.After(time.Second):
		t.Fatal("no transition event published")

		return nil
	}
}

// flakyRegionRepository fails every save after the first failAfter succeed.
type flakyRegionRepository struct {
	repository.RegionRepository

	failAfter int
	saves     int
}

func (r *flakyRegionRepository) SaveRegion(ctx context.Context, region *entity.Region) error {
	r.saves++
	if r.saves > r.failAfter {
		return errors.New("connection reset")
	}

	return r.RegionRepository.SaveRegion(ctx, region)
}

func TestGeofenceLifecycle_UWIDepartmentOfComputing(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return fixedNow }

	channel := pubsub.NewTransitionChannel(8)
	engine := monitor.NewEngine(channel, discardLogger(), monitor.Options{MaxRegions: 100, Now: now})

	permissions := mockService.NewMockPermissionChecker(t)
	permissions.EXPECT().CheckLocationPermission(mock.Anything).Return(nil)

	registry, err := NewGeofenceService(
		memory.NewRegionRepository(),
		engine,
		permissions,
		qrcode.NewQRCodeService(256, "M"),
		testGeofenceConfig(),
		discardLogger(),
	)
	require.NoError(t, err)
	registry.(*geofenceService).now = now

	locations := NewLocationService(engine, permissions, discardLogger())

	_, err = registry.RegisterGeofence(ctx, uwiInput())
	require.NoError(t, err)

	require.NoError(t, locations.ReportLocation(ctx, &entity.LocationFix{
		DeviceID:   "pixel-7",
		Position:   entity.LatLng{Latitude: 18.0060, Longitude: -76.7495},
		RecordedAt: fixedNow,
	}))

	event := receiveEvent(t, channel)
	assert.Equal(t, entity.TransitionEnter, event.Kind)
	assert.Equal(t, []string{"10101"}, event.Regions)

	sink := mockService.NewMockNotificationSink(t)
	sink.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.Kind == entity.NotificationEntered && n.RegionID == "10101" && n.DeviceID == "pixel-7"
		})).
		Return(nil).
		Once()

	NewDispatcherService(sink, discardLogger()).HandleEvent(ctx, event)
}

func TestGeofenceLifecycle_ReRegisterReplaces(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return fixedNow }

	channel := pubsub.NewTransitionChannel(8)
	engine := monitor.NewEngine(channel, discardLogger(), monitor.Options{MaxRegions: 100, Now: now})

	permissions := mockService.NewMockPermissionChecker(t)
	permissions.EXPECT().CheckLocationPermission(mock.Anything).Return(nil)

	registry, err := NewGeofenceService(memory.NewRegionRepository(), engine, permissions, nil, testGeofenceConfig(), discardLogger())
	require.NoError(t, err)
	registry.(*geofenceService).now = now

	_, err = registry.RegisterGeofence(ctx, uwiInput())
	require.NoError(t, err)

	smaller := uwiInput()
	smaller.Radius = 50
	_, err = registry.RegisterGeofence(ctx, smaller)
	require.NoError(t, err)

	regions, err := registry.ListGeofences(ctx)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, 50.0, regions[0].Radius)
	assert.Equal(t, []string{"10101"}, engine.MonitoredRegions())

	require.NoError(t, registry.UnregisterGeofence(ctx, "10101"))
	assert.Empty(t, engine.MonitoredRegions())
}

func TestGeofenceLifecycle_ReRegisterSaveFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	now := func() time.Time { return fixedNow }

	channel := pubsub.NewTransitionChannel(8)
	engine := monitor.NewEngine(channel, discardLogger(), monitor.Options{MaxRegions: 100, Now: now})

	permissions := mockService.NewMockPermissionChecker(t)
	permissions.EXPECT().CheckLocationPermission(mock.Anything).Return(nil)

	repo := &flakyRegionRepository{RegionRepository: memory.NewRegionRepository(), failAfter: 1}
	registry, err := NewGeofenceService(repo, engine, permissions, nil, testGeofenceConfig(), discardLogger())
	require.NoError(t, err)
	registry.(*geofenceService).now = now

	_, err = registry.RegisterGeofence(ctx, uwiInput())
	require.NoError(t, err)

	smaller := uwiInput()
	smaller.Radius = 50
	_, err = registry.RegisterGeofence(ctx, smaller)
	require.Error(t, err)

	assert.Equal(t, []string{"10101"}, engine.MonitoredRegions())

	stored, err := registry.GetGeofence(ctx, "10101")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.Radius)
}
