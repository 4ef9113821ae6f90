package main

import (
	"context"
	"log/slog"
	"os"

	"geoo/config"
	"geoo/internal/delivery"
	"geoo/internal/delivery/api"
	"geoo/internal/delivery/api/middleware"
	"geoo/internal/delivery/api/router/handler"
	"geoo/internal/delivery/channel"
	"geoo/internal/delivery/subscriber"
	"geoo/internal/domain/service"
	"geoo/internal/infra/auth"
	logs "geoo/internal/infra/log"
	"geoo/internal/infra/monitor"
	"geoo/internal/infra/notification"
	"geoo/internal/infra/persistence"
	"geoo/internal/infra/pubsub"
	"geoo/internal/infra/qrcode"
	"geoo/internal/usecase"
	"geoo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			restoreGeofences,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRegionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewPermissionChecker,
			notification.NewNotificationSink,
			newQRCodeService,
			fx.Annotate(
				monitor.New,
				fx.As(new(service.LocationMonitor)),
				fx.As(new(service.LocationFeed)),
			),
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeofenceService,
			impl.NewLocationService,
			impl.NewDispatcherService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGeofenceHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				channel.NewConsumer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				subscriber.NewLocationSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// restoreGeofences re-submits persisted regions to the monitor once the app starts
func restoreGeofences(lc fx.Lifecycle, geofenceUC usecase.GeofenceUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			_, err := geofenceUC.RestoreGeofences(ctx)

			return err
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
