package queries

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/services"
	"withus/internal/pkg/guard"
)

var ErrGetUserReviewsQueryIsNotConstructed = errors.New(
	"GetUserReviewsQuery must be created via NewGetUserReviewsQuery constructor",
)

// GetUserReviewsQuery retrieves one user's reviews, newest first.
// Customers may list only their own reviews; administrators may list any
// user's.
type GetUserReviewsQuery struct {
	userID kernel.UUID
	caller services.Caller

	guard guard.ConstructorGuard
}

// NewGetUserReviewsQuery creates a validated user review query.
func NewGetUserReviewsQuery(userID kernel.UUID, caller services.Caller) (GetUserReviewsQuery, error) {
	if err := errors.Join(userID.Validate(), caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetUserReviewsQuery{}, err
	}

	return GetUserReviewsQuery{
		userID: userID,
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserReviewsQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose reviews are requested.
func (q GetUserReviewsQuery) UserID() kernel.UUID {
	return q.userID
}

// Caller returns the identity issuing the query.
func (q GetUserReviewsQuery) Caller() services.Caller {
	return q.caller
}
