package queries

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/services"
	"withus/internal/pkg/guard"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves one user's order history, newest first.
// Customers may list only their own orders; administrators may list any
// user's.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a validated order history query.
func NewGetUserOrdersQuery(userID kernel.UUID, caller services.Caller) (GetUserOrdersQuery, error) {
	if err := errors.Join(userID.Validate(), caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetUserOrdersQuery{}, err
	}

	return GetUserOrdersQuery{
		userID: userID,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Caller returns the identity issuing the query.
func (q GetUserOrdersQuery) Caller() services.Caller {
	return q.caller
}
