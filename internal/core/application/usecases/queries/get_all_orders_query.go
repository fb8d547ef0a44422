package queries

import (
	"errors"

	"withus/internal/core/domain/services"
	"withus/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, newest first.
// Administrator only: this is the order management overview.
type GetAllOrdersQuery struct {
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a validated order overview query.
func NewGetAllOrdersQuery(caller services.Caller) (GetAllOrdersQuery, error) {
	if err := errors.Join(caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Caller returns the identity issuing the query.
func (q GetAllOrdersQuery) Caller() services.Caller {
	return q.caller
}
