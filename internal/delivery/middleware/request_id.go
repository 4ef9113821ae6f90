package middleware

import (
	"log/slog"

	deliverycontext "geoo/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every API call the request ID that later tags
// the transitions it causes on the transport and in the dispatcher logs
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process accepts a well-formed X-Request-Id from the caller or mints one,
// echoes it back and stores it with a tagged logger on the request context
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := deliverycontext.RequestIDOrNew(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		// Usecases read both back through deliverycontext; the publisher copies
		// the ID onto the outgoing transition as the request_id attribute.
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String(deliverycontext.AttrRequestID, requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
