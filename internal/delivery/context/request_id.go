// Package context carries request-scoped values between delivery and usecase layers.
package context

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyGrants is the key for storing the caller's verified permissions.
	KeyGrants ContextKey = "grants"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// AttrRequestID names the request ID in log records, Pub/Sub attributes
	// and AMQP headers, so one transition keeps its ID across every hop.
	AttrRequestID = "request_id"

	// maxRequestIDLength bounds caller supplied IDs before they reach logs and message attributes.
	maxRequestIDLength = 128
)

// Grants is what an access token proved about the caller.
type Grants struct {
	DeviceID    string
	Permissions []string
}

// Has reports whether the permission was granted.
func (g *Grants) Has(permission string) bool {
	return g != nil && slices.Contains(g.Permissions, permission)
}

// RequestIDOrNew returns candidate when it is a usable request ID and a fresh
// UUID otherwise. Empty, oversized or non-printable values are replaced.
func RequestIDOrNew(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return uuid.New().String()
	}
	for _, r := range candidate {
		if r < 0x21 || r > 0x7e {
			return uuid.New().String()
		}
	}

	return candidate
}

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// WithGrants returns a new context carrying the caller's permissions.
func WithGrants(ctx context.Context, grants *Grants) context.Context {
	return context.WithValue(ctx, KeyGrants, grants)
}

// GetGrants returns the caller's permissions, or nil for an anonymous caller.
func GetGrants(ctx context.Context) *Grants {
	grants, _ := ctx.Value(KeyGrants).(*Grants)

	return grants
}
