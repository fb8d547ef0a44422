package user

import (
	"fmt"

	"withus/internal/pkg/errs"
)

// Role is the closed set of authorization roles a user can hold.
// The binding of a role to an identity is immutable after registration;
// no operation in the system changes a user's role.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"

	// RoleAdmin grants access to order management across all users.
	RoleAdmin Role = "admin"
)

// RoleFromString parses a role, rejecting anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate returns an error for any value outside the closed role set.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}
