package middleware

import (
	"strings"

	"geoo/internal/delivery/api/response"
	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware turns bearer tokens into request grants.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token when one is sent. A request
// without an Authorization header continues with no grants.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		grants := &deliverycontext.Grants{
			DeviceID:    claims.DeviceID,
			Permissions: claims.Permissions,
		}
		c.Set(string(deliverycontext.KeyGrants), grants)
		c.SetRequest(c.Request().WithContext(deliverycontext.WithGrants(c.Request().Context(), grants)))

		return next(c)
	}
}

// RequireDevice only lets a token act for the device named by the path parameter.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireDevice(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			grants := deliverycontext.GetGrants(c.Request().Context())
			if grants == nil {
				return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
			}
			if grants.DeviceID != c.Param(param) {
				return response.Forbidden(c, "DEVICE_MISMATCH", "Token was not issued for this device")
			}

			return next(c)
		}
	}
}
