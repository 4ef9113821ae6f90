package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"geoo/config"
	"geoo/internal/domain/entity"
	domainerrors "geoo/internal/domain/errors"
	"geoo/internal/domain/repository"
	"geoo/internal/domain/service"
	"geoo/internal/errors"
	"geoo/internal/usecase"
)

type geofenceService struct {
	regionRepo  repository.RegionRepository
	monitor     service.LocationMonitor
	permissions service.PermissionChecker
	qrcode      service.QRCodeService
	logger      *slog.Logger

	maxRadius         float64
	defaultExpiration time.Duration
	defaultTrigger    entity.InitialTrigger
	now               func() time.Time
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(
	regionRepo repository.RegionRepository,
	monitor service.LocationMonitor,
	permissions service.PermissionChecker,
	qrcode service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) (usecase.GeofenceUsecase, error) {
	defaultTrigger, err := entity.ParseInitialTrigger(cfg.Geofence.InitialTrigger)
	if err != nil {
		return nil, errors.Wrap(err, "geofence.initialTrigger")
	}

	defaultExpiration := cfg.Geofence.DefaultExpiration
	if defaultExpiration <= 0 {
		defaultExpiration = entity.NeverExpire
	}

	return &geofenceService{
		regionRepo:        regionRepo,
		monitor:           monitor,
		permissions:       permissions,
		qrcode:            qrcode,
		logger:            logger,
		maxRadius:         cfg.Geofence.MaxRadius,
		defaultExpiration: defaultExpiration,
		defaultTrigger:    defaultTrigger,
		now:               time.Now,
	}, nil
}

// RegisterGeofence validates the region, hands it to the monitor and persists it
func (s *geofenceService) RegisterGeofence(ctx context.Context, input *usecase.RegisterGeofenceInput) (*entity.Region, error) {
	if err := s.checkPermission(ctx); err != nil {
		return nil, err
	}

	region, err := s.buildRegion(input)
	if err != nil {
		return nil, err
	}
	if err := region.Validate(s.maxRadius); err != nil {
		return nil, err
	}
	region.Activate(s.now())

	previous, err := s.activeRegion(ctx, region.ID)
	if err != nil {
		return nil, err
	}

	request := &service.GeofencingRequest{
		Regions:        []*entity.Region{region},
		InitialTrigger: region.InitialTrigger,
	}
	if err := s.monitor.AddGeofences(ctx, request); err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
	}

	if err := s.regionRepo.SaveRegion(ctx, region); err != nil {
		s.rollback(ctx, region.ID, previous)

		return nil, errors.Wrap(err, "failed to save region")
	}

	s.logger.Info("Geofence registered",
		slog.String("region_id", region.ID),
		slog.Float64("radius", region.Radius),
		slog.Any("triggers", region.Triggers.Names()),
	)

	return region, nil
}

// UnregisterGeofence stops monitoring the region and deletes it
func (s *geofenceService) UnregisterGeofence(ctx context.Context, id string) error {
	if _, err := s.findRegion(ctx, id); err != nil {
		return err
	}

	if err := s.monitor.RemoveGeofences(ctx, []string{id}); err != nil {
		return domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
	}

	if err := s.regionRepo.DeleteRegion(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return domainerrors.ErrRegionNotFound.WithDetails(id)
		}

		return errors.Wrap(err, "failed to delete region")
	}

	s.logger.Info("Geofence unregistered", slog.String("region_id", id))

	return nil
}

// GetGeofence retrieves an active region
func (s *geofenceService) GetGeofence(ctx context.Context, id string) (*entity.Region, error) {
	return s.findRegion(ctx, id)
}

// ListGeofences retrieves all active regions
func (s *geofenceService) ListGeofences(ctx context.Context) ([]*entity.Region, error) {
	regions, err := s.regionRepo.FindActiveRegions(ctx, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active regions")
	}

	return regions, nil
}

// RestoreGeofences purges expired regions and re-submits the rest to the monitor.
// Consecutive regions sharing an initial trigger go out in one request so the
// monitor keeps the original registration order.
func (s *geofenceService) RestoreGeofences(ctx context.Context) (int, error) {
	now := s.now()

	purged, err := s.regionRepo.DeleteExpiredRegions(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired regions")
	}

	regions, err := s.regionRepo.FindActiveRegions(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find active regions")
	}

	restored := 0
	for start := 0; start < len(regions); {
		end := start + 1
		for end < len(regions) && regions[end].InitialTrigger == regions[start].InitialTrigger {
			end++
		}

		request := &service.GeofencingRequest{
			Regions:        regions[start:end],
			InitialTrigger: regions[start].InitialTrigger,
		}
		if err := s.monitor.AddGeofences(ctx, request); err != nil {
			return restored, domainerrors.ErrServiceUnavailable.WithDetails(err.Error())
		}
		restored += end - start
		start = end
	}

	s.logger.Info("Geofences restored",
		slog.Int("restored", restored),
		slog.Int64("purged", purged),
	)

	return restored, nil
}

// GeofenceQRCode renders the region as a geo URI QR code
func (s *geofenceService) GeofenceQRCode(ctx context.Context, id string) ([]byte, error) {
	region, err := s.findRegion(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateQRCode(region.GeoURI())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate qr code")
	}

	return png, nil
}

func (s *geofenceService) checkPermission(ctx context.Context) error {
	err := s.permissions.CheckLocationPermission(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, domainerrors.ErrPermissionDenied) {
		return err
	}

	return domainerrors.ErrPermissionDenied.WithDetails(err.Error())
}

// rollback puts the monitor back in line with the repository after a failed
// save: the stored definition is re-submitted without an initial trigger, or
// the region is removed when nothing was stored.
func (s *geofenceService) rollback(ctx context.Context, id string, previous *entity.Region) {
	var err error
	if previous != nil {
		err = s.monitor.AddGeofences(ctx, &service.GeofencingRequest{
			Regions:        []*entity.Region{previous},
			InitialTrigger: entity.InitialTriggerNone,
		})
	} else {
		err = s.monitor.RemoveGeofences(ctx, []string{id})
	}

	if err != nil {
		s.logger.Error("Failed to roll back geofence after save error",
			slog.String("region_id", id),
			slog.Bool("restore_previous", previous != nil),
			slog.Any("error", err),
		)
	}
}

// activeRegion returns the stored, unexpired region or nil when there is none
func (s *geofenceService) activeRegion(ctx context.Context, id string) (*entity.Region, error) {
	region, err := s.findRegion(ctx, id)
	if errors.Is(err, domainerrors.ErrRegionNotFound) {
		return nil, nil
	}

	return region, err
}

func (s *geofenceService) findRegion(ctx context.Context, id string) (*entity.Region, error) {
	region, err := s.regionRepo.FindRegionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, domainerrors.ErrRegionNotFound.WithDetails(id)
		}

		return nil, errors.Wrap(err, "failed to find region")
	}
	if region.IsExpired(s.now()) {
		return nil, domainerrors.ErrRegionNotFound.WithDetails(id)
	}

	return region, nil
}

func (s *geofenceService) buildRegion(input *usecase.RegisterGeofenceInput) (*entity.Region, error) {
	triggers, err := entity.ParseTransitionSet(input.Triggers)
	if err != nil {
		return nil, domainerrors.ErrInvalidRegion.WithDetails(err.Error())
	}

	initialTrigger := s.defaultTrigger
	if len(input.InitialTrigger) > 0 {
		initialTrigger, err = entity.ParseInitialTrigger(strings.Join(input.InitialTrigger, ","))
		if err != nil {
			return nil, domainerrors.ErrInvalidRegion.WithDetails(err.Error())
		}
	}

	// never_expire takes precedence over expiration_ms
	expiration := s.defaultExpiration
	switch {
	case input.NeverExpire:
		expiration = entity.NeverExpire
	case input.ExpirationMs > 0:
		expiration, err = entity.ExpirationFromMillis(input.ExpirationMs)
		if err != nil {
			return nil, err
		}
	}

	return &entity.Region{
		ID:             strings.TrimSpace(input.ID),
		Label:          input.Label,
		Center:         entity.LatLng{Latitude: input.Latitude, Longitude: input.Longitude},
		Radius:         input.Radius,
		Expiration:     expiration,
		Triggers:       triggers,
		InitialTrigger: initialTrigger,
	}, nil
}
