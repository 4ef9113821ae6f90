package auth

import (
	"context"

	deliverycontext "geoo/internal/delivery/context"
	"geoo/internal/domain/constants"
	domainerrors "geoo/internal/domain/errors"
	"geoo/internal/domain/service"
)

// tokenPermissionChecker grants fine location to callers whose verified
// access token carries the location.fine permission.
type tokenPermissionChecker struct{}

// NewPermissionChecker creates the token-backed permission checker.
func NewPermissionChecker() service.PermissionChecker {
	return &tokenPermissionChecker{}
}

func (c *tokenPermissionChecker) CheckLocationPermission(ctx context.Context) error {
	if !deliverycontext.GetGrants(ctx).Has(constants.PermissionFineLocation) {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}
