package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"geoo/config"
	deliverycontext "geoo/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/geofences/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})

	return e
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	req := httptest.NewRequest(http.MethodGet, "/geofences/10101", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Body.String())
	assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Empty(t, buf.String(), "request logging is off outside debug mode")
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/geofences/10101", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), rec.Body.String())
}

func TestRequestIDMiddleware_ReplacesMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "blank", header: "   "},
		{name: "embedded space", header: "req 1"},
		{name: "too long", header: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := newTestEcho(&buf, false)

			req := httptest.NewRequest(http.MethodGet, "/geofences/10101", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			requestID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, tt.header, requestID)
			_, err := uuid.Parse(requestID)
			assert.NoError(t, err)
			assert.Equal(t, requestID, rec.Body.String())
		})
	}
}

func TestLoggerMiddleware_LogsInDebugMode(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEcho(&buf, true)

	req := httptest.NewRequest(http.MethodGet, "/geofences/10101", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-2")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "HTTP Request", record["msg"])
	assert.Equal(t, "req-2", record[deliverycontext.AttrRequestID])
	assert.Equal(t, "/geofences/:id", record["route"])
	assert.EqualValues(t, http.StatusOK, record["status"])
}
