package service

import "context"

// PermissionChecker reports whether the caller holds fine location permission.
type PermissionChecker interface {
	// CheckLocationPermission returns nil when fine location access is granted.
	CheckLocationPermission(ctx context.Context) error
}
