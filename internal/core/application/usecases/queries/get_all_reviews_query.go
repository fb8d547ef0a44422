package queries

import (
	"errors"

	"withus/internal/pkg/guard"
)

var ErrGetAllReviewsQueryIsNotConstructed = errors.New(
	"GetAllReviewsQuery must be created via NewGetAllReviewsQuery constructor",
)

// GetAllReviewsQuery retrieves every review with reviewer and item names,
// newest first. This is a public query used for the storefront review feed.
type GetAllReviewsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllReviewsQuery creates a query for the review feed.
func NewGetAllReviewsQuery() GetAllReviewsQuery {
	return GetAllReviewsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllReviewsQueryIsNotConstructed)
}
