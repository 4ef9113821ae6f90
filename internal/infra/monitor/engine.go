// Package monitor is the in-process location monitoring service. It keeps
// the registered regions, evaluates device fixes against them and reports
// boundary crossings to the transition publisher it was built with.
package monitor

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"geoo/config"
	"geoo/internal/domain/entity"
	"geoo/internal/domain/lifecycle"
	"geoo/internal/domain/service"
	"geoo/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const defaultMaxRegions = 100

// Options tunes an Engine.
type Options struct {
	MaxRegions    int
	SweepInterval time.Duration
	Now           func() time.Time
}

// Engine implements service.LocationMonitor and service.LocationFeed.
type Engine struct {
	mu      sync.Mutex
	regions map[string]*entity.Region
	order   []string // registration order
	devices map[string]*deviceState

	publisher     service.TransitionPublisher
	logger        *slog.Logger
	maxRegions    int
	sweepInterval time.Duration
	now           func() time.Time
}

type deviceState struct {
	last   entity.LocationFix
	inside map[string]struct{}
}

// Params defines the dependencies of the fx-managed engine
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.TransitionPublisher
}

// New creates the engine and runs its expiry sweep for the lifetime of the app.
func New(params Params) *Engine {
	engine := NewEngine(params.Publisher, params.Logger, Options{
		MaxRegions:    params.Config.Monitor.MaxRegions,
		SweepInterval: params.Config.Monitor.SweepInterval,
	})

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				engine.Run(runCtx)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			stopCtx, stop := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer stop()

			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return errors.Wrap(stopCtx.Err(), "monitor sweep did not stop")
			}
		},
	})

	return engine
}

// NewEngine creates an engine without lifecycle wiring.
func NewEngine(publisher service.TransitionPublisher, logger *slog.Logger, opts Options) *Engine {
	if opts.MaxRegions <= 0 {
		opts.MaxRegions = defaultMaxRegions
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Engine{
		regions:       make(map[string]*entity.Region),
		devices:       make(map[string]*deviceState),
		publisher:     publisher,
		logger:        logger,
		maxRegions:    opts.MaxRegions,
		sweepInterval: opts.SweepInterval,
		now:           opts.Now,
	}
}

// AddGeofences starts monitoring the regions in the request. An ID that is
// already monitored is replaced. Devices with a known position are evaluated
// against the new regions right away and the request's initial trigger
// decides whether that evaluation is reported.
func (e *Engine) AddGeofences(ctx context.Context, request *service.GeofencingRequest) error {
	if request == nil || len(request.Regions) == 0 {
		return &service.StatusError{Code: entity.StatusGeofenceNotAvailable, Reason: "empty geofencing request"}
	}

	e.mu.Lock()

	added := 0
	seen := make(map[string]struct{}, len(request.Regions))
	for _, region := range request.Regions {
		if _, dup := seen[region.ID]; dup {
			continue
		}
		seen[region.ID] = struct{}{}
		if _, ok := e.regions[region.ID]; !ok {
			added++
		}
	}
	if len(e.regions)+added > e.maxRegions {
		e.mu.Unlock()

		return &service.StatusError{Code: entity.StatusTooManyGeofences}
	}

	now := e.now()
	var events []*entity.TransitionEvent
	for _, deviceID := range slices.Sorted(maps.Keys(e.devices)) {
		state := e.devices[deviceID]
		var entered, exited []string
		for _, region := range request.Regions {
			inside := contains(region, state.last.Position)
			if inside {
				state.inside[region.ID] = struct{}{}
			} else {
				delete(state.inside, region.ID)
			}

			switch {
			case inside && request.InitialTrigger.Has(entity.TransitionEnter) && region.Triggers.Has(entity.TransitionEnter):
				entered = appendUnique(entered, region.ID)
			case !inside && request.InitialTrigger.Has(entity.TransitionExit) && region.Triggers.Has(entity.TransitionExit):
				exited = appendUnique(exited, region.ID)
			}
		}
		events = appendEvents(events, state, now, exited, entered)
	}

	for _, region := range request.Regions {
		stored := *region
		if _, ok := e.regions[region.ID]; ok {
			e.order = slices.DeleteFunc(e.order, func(id string) bool { return id == region.ID })
		}
		e.regions[region.ID] = &stored
		e.order = append(e.order, region.ID)
	}

	e.mu.Unlock()

	e.logger.Debug("Geofences added",
		slog.Int("count", len(request.Regions)),
		slog.Int("monitored", len(e.MonitoredRegions())),
	)
	e.publish(ctx, events)

	return nil
}

// RemoveGeofences stops monitoring the IDs; unknown IDs are ignored and no
// exit events are reported for removed regions.
func (e *Engine) RemoveGeofences(_ context.Context, ids []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.removeLocked(ids)

	return nil
}

func (e *Engine) removeLocked(ids []string) {
	for _, id := range ids {
		delete(e.regions, id)
		for _, state := range e.devices {
			delete(state.inside, id)
		}
	}
	e.order = slices.DeleteFunc(e.order, func(id string) bool {
		_, ok := e.regions[id]

		return !ok
	})
}

// PushLocation records the fix and reports the regions the device left (one
// EXIT event) and entered (one ENTER event), each in registration order.
func (e *Engine) PushLocation(ctx context.Context, fix *entity.LocationFix) error {
	if fix == nil {
		return errors.New("location fix is required")
	}

	now := e.now()
	occurredAt := fix.RecordedAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	e.mu.Lock()

	state, ok := e.devices[fix.DeviceID]
	if !ok {
		state = &deviceState{inside: make(map[string]struct{})}
		e.devices[fix.DeviceID] = state
	}
	state.last = *fix
	state.last.RecordedAt = occurredAt

	var entered, exited []string
	for _, id := range e.order {
		region := e.regions[id]
		_, wasInside := state.inside[id]
		if region.IsExpired(now) {
			delete(state.inside, id)

			continue
		}

		inside := contains(region, fix.Position)
		switch {
		case inside && !wasInside:
			state.inside[id] = struct{}{}
			if region.Triggers.Has(entity.TransitionEnter) {
				entered = append(entered, id)
			}
		case !inside && wasInside:
			delete(state.inside, id)
			if region.Triggers.Has(entity.TransitionExit) {
				exited = append(exited, id)
			}
		}
	}

	events := appendEvents(nil, state, occurredAt, exited, entered)

	e.mu.Unlock()

	e.publish(ctx, events)

	return nil
}

// LastLocation returns the most recent fix of the device or nil.
func (e *Engine) LastLocation(_ context.Context, deviceID string) (*entity.LocationFix, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	state, ok := e.devices[deviceID]
	if !ok {
		return nil, nil
	}
	last := state.last

	return &last, nil
}

// ReportUnavailable forgets every device position and reports
// GEOFENCE_NOT_AVAILABLE. Regions remain registered.
func (e *Engine) ReportUnavailable(ctx context.Context) error {
	e.mu.Lock()
	clear(e.devices)
	e.mu.Unlock()

	e.publish(ctx, []*entity.TransitionEvent{{
		Kind:       entity.TransitionError,
		ErrorCode:  entity.StatusGeofenceNotAvailable,
		OccurredAt: e.now(),
	}})

	return nil
}

// MonitoredRegions lists the region IDs in registration order.
func (e *Engine) MonitoredRegions() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return slices.Clone(e.order)
}

// SweepExpired drops regions that expired at or before now.
func (e *Engine) SweepExpired(now time.Time) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var expired []string
	for _, id := range e.order {
		if e.regions[id].IsExpired(now) {
			expired = append(expired, id)
		}
	}
	e.removeLocked(expired)

	return expired
}

// Run sweeps expired regions until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	if e.sweepInterval <= 0 {
		<-ctx.Done()

		return
	}

	ticker := time.NewTicker(e.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if expired := e.SweepExpired(e.now()); len(expired) > 0 {
				e.logger.Info("Expired geofences removed", slog.Any("region_ids", expired))
			}
		}
	}
}

func (e *Engine) publish(ctx context.Context, events []*entity.TransitionEvent) {
	for _, event := range events {
		if err := e.publisher.PublishTransition(ctx, event); err != nil {
			e.logger.Error("Failed to publish transition",
				slog.String("transition", event.Kind.String()),
				slog.String("device_id", event.DeviceID),
				slog.Any("region_ids", event.Regions),
				slog.Any("error", err),
			)
		}
	}
}

func appendEvents(events []*entity.TransitionEvent, state *deviceState, at time.Time, exited, entered []string) []*entity.TransitionEvent {
	location := state.last.Position
	if len(exited) > 0 {
		events = append(events, &entity.TransitionEvent{
			Kind:       entity.TransitionExit,
			Regions:    exited,
			DeviceID:   state.last.DeviceID,
			Location:   &location,
			OccurredAt: at,
		})
	}
	if len(entered) > 0 {
		events = append(events, &entity.TransitionEvent{
			Kind:       entity.TransitionEnter,
			Regions:    entered,
			DeviceID:   state.last.DeviceID,
			Location:   &location,
			OccurredAt: at,
		})
	}

	return events
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}

	return append(ids, id)
}

// contains reports whether p lies within the region's radius.
func contains(region *entity.Region, p entity.LatLng) bool {
	center := orb.Point{region.Center.Longitude, region.Center.Latitude}

	return geo.Distance(center, orb.Point{p.Longitude, p.Latitude}) <= region.Radius
}
