package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geoo/internal/delivery/api/response"
	"geoo/internal/domain/entity"
	"geoo/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence-related handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// GeofenceResponse is the API view of a region
type GeofenceResponse struct {
	ID             string     `json:"id"`
	Label          string     `json:"label,omitempty"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	Radius         float64    `json:"radius"`
	ExpirationMs   int64      `json:"expiration_ms"` // -1 means never
	Triggers       []string   `json:"triggers"`
	InitialTrigger []string   `json:"initial_trigger"`
	RegisteredAt   time.Time  `json:"registered_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

func newGeofenceResponse(region *entity.Region) *GeofenceResponse {
	expirationMs := int64(-1)
	if !region.NeverExpires() {
		expirationMs = region.Expiration.Milliseconds()
	}

	initialTrigger := make([]string, 0, 2)
	for _, kind := range []entity.TransitionKind{entity.TransitionEnter, entity.TransitionExit} {
		if region.InitialTrigger.Has(kind) {
			initialTrigger = append(initialTrigger, kind.String())
		}
	}

	return &GeofenceResponse{
		ID:             region.ID,
		Label:          region.Label,
		Latitude:       region.Center.Latitude,
		Longitude:      region.Center.Longitude,
		Radius:         region.Radius,
		ExpirationMs:   expirationMs,
		Triggers:       region.Triggers.Names(),
		InitialTrigger: initialTrigger,
		RegisteredAt:   region.RegisteredAt,
		ExpiresAt:      region.ExpiresAt,
	}
}

// RegisterGeofence handles geofence registration
func (h *GeofenceHandler) RegisterGeofence(c echo.Context) error {
	var req usecase.RegisterGeofenceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	region, err := h.geofenceUC.RegisterGeofence(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newGeofenceResponse(region))
}

// ListGeofences handles retrieving all active geofences
func (h *GeofenceHandler) ListGeofences(c echo.Context) error {
	regions, err := h.geofenceUC.ListGeofences(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*GeofenceResponse, 0, len(regions))
	for _, region := range regions {
		items = append(items, newGeofenceResponse(region))
	}

	return response.Success(c, http.StatusOK, items)
}

// GetGeofence handles retrieving a single geofence
func (h *GeofenceHandler) GetGeofence(c echo.Context) error {
	region, err := h.geofenceUC.GetGeofence(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newGeofenceResponse(region))
}

// UnregisterGeofence handles geofence removal
func (h *GeofenceHandler) UnregisterGeofence(c echo.Context) error {
	if err := h.geofenceUC.UnregisterGeofence(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetGeofenceQRCode returns the region as a PNG QR code
func (h *GeofenceHandler) GetGeofenceQRCode(c echo.Context) error {
	png, err := h.geofenceUC.GeofenceQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
