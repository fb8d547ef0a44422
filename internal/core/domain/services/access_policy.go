package services

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
)

// ErrForbidden is returned when a caller is denied access to a resource.
// The transport layer maps it to 403.
var ErrForbidden = errors.New("access to this resource is forbidden")

// Caller is the authenticated identity attached to a request, as resolved
// from a verified session token.
type Caller struct {
	ID   kernel.UUID
	Role user.Role
}

// CanAccessOwned reports whether the caller may read or mutate a resource
// owned by ownerID: allowed for the owner themselves and for admins.
func CanAccessOwned(caller Caller, ownerID kernel.UUID) bool {
	return caller.ID.IsEqual(ownerID) || caller.Role.IsAdmin()
}

// RequireSelfOrAdmin returns ErrForbidden unless the caller owns the
// resource or is an admin. Used for viewing a user's orders and reviews.
func RequireSelfOrAdmin(caller Caller, ownerID kernel.UUID) error {
	if !CanAccessOwned(caller, ownerID) {
		return ErrForbidden
	}
	return nil
}

// RequireAdmin returns ErrForbidden for non-admin callers. Used for listing
// all orders and for status transitions.
func RequireAdmin(caller Caller) error {
	if !caller.Role.IsAdmin() {
		return ErrForbidden
	}
	return nil
}
