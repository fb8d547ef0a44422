package ports

import (
	"context"
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/review"
)

// ErrDuplicateReview is returned by Add when the (user, item) pair already
// has a review.
var ErrDuplicateReview = errors.New("item already reviewed by this user")

// ReviewRepository defines the persistence contract for review aggregates.
type ReviewRepository interface {
	// Add persists a new review. Returns ErrDuplicateReview when the
	// (user, item) uniqueness rule is violated.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForUserAndItem reports whether the user has already reviewed
	// the item.
	ExistsForUserAndItem(ctx context.Context, userID, itemID kernel.UUID) (bool, error)
}
