// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geoo/internal/delivery/api/middleware"
	"geoo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GeofenceHandler *handler.GeofenceHandler
	LocationHandler *handler.LocationHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	geofenceHandler *handler.GeofenceHandler
	locationHandler *handler.LocationHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		geofenceHandler: params.GeofenceHandler,
		locationHandler: params.LocationHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Grants are optional here; the use cases decide what needs fine location
	geofencesGroup := e.Group("/geofences")
	geofencesGroup.Use(r.authMiddleware.Authenticate)
	{
		geofencesGroup.POST("", r.geofenceHandler.RegisterGeofence)
		geofencesGroup.GET("", r.geofenceHandler.ListGeofences)
		geofencesGroup.GET("/:id", r.geofenceHandler.GetGeofence)
		geofencesGroup.DELETE("/:id", r.geofenceHandler.UnregisterGeofence)
		geofencesGroup.GET("/:id/qrcode", r.geofenceHandler.GetGeofenceQRCode)
	}

	devicesGroup := e.Group("/devices/:device_id")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	{
		devicesGroup.POST("/locations", r.locationHandler.ReportLocation, r.authMiddleware.RequireDevice("device_id"))
		devicesGroup.GET("/location", r.locationHandler.GetLastLocation)
	}
}
