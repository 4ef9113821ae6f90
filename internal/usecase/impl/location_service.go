package impl

import (
	"context"
	"log/slog"
	"time"

	"geoo/internal/domain/entity"
	domainerrors "geoo/internal/domain/errors"
	"geoo/internal/domain/service"
	"geoo/internal/errors"
	"geoo/internal/usecase"
)

type locationService struct {
	feed        service.LocationFeed
	permissions service.PermissionChecker
	logger      *slog.Logger
	now         func() time.Time
}

// NewLocationService creates a new location service instance
func NewLocationService(feed service.LocationFeed, permissions service.PermissionChecker, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		feed:        feed,
		permissions: permissions,
		logger:      logger,
		now:         time.Now,
	}
}

// ReportLocation validates the fix and forwards it to the monitor
func (s *locationService) ReportLocation(ctx context.Context, fix *entity.LocationFix) error {
	if err := fix.Validate(); err != nil {
		return err
	}
	if fix.RecordedAt.IsZero() {
		fix.RecordedAt = s.now()
	}

	if err := s.feed.PushLocation(ctx, fix); err != nil {
		return errors.Wrap(err, "failed to push location")
	}

	s.logger.Debug("Location reported",
		slog.String("device_id", fix.DeviceID),
		slog.Float64("latitude", fix.Position.Latitude),
		slog.Float64("longitude", fix.Position.Longitude),
	)

	return nil
}

// LastLocation returns the last known fix when fine location permission is granted
func (s *locationService) LastLocation(ctx context.Context, deviceID string) (*entity.LocationFix, error) {
	if err := s.permissions.CheckLocationPermission(ctx); err != nil {
		if errors.Is(err, domainerrors.ErrPermissionDenied) {
			return nil, err
		}

		return nil, domainerrors.ErrPermissionDenied.WithDetails(err.Error())
	}

	fix, err := s.feed.LastLocation(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read last location")
	}
	if fix == nil {
		return nil, domainerrors.ErrLocationUnavailable.WithDetails(deviceID)
	}

	return fix, nil
}

// ReportUnavailable forwards a lost location source to the monitor
func (s *locationService) ReportUnavailable(ctx context.Context) error {
	s.logger.Warn("Location input unavailable")

	return errors.Wrap(s.feed.ReportUnavailable(ctx), "failed to report unavailable location")
}
