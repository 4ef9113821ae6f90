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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for device location handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ReportLocation handles a location fix pushed by a device
func (h *LocationHandler) ReportLocation(c echo.Context) error {
	var req usecase.ReportLocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	fix := &entity.LocationFix{
		DeviceID: c.Param("device_id"),
		Position: entity.LatLng{Latitude: req.Latitude, Longitude: req.Longitude},
		Accuracy: req.Accuracy,
	}
	if req.Timestamp > 0 {
		fix.RecordedAt = time.Unix(req.Timestamp, 0).UTC()
	}

	if err := h.locationUC.ReportLocation(c.Request().Context(), fix); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// GetLastLocation handles retrieving the last known fix of a device
func (h *LocationHandler) GetLastLocation(c echo.Context) error {
	fix, err := h.locationUC.LastLocation(c.Request().Context(), c.Param("device_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fix)
}
