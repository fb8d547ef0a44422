package queries

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/pkg/guard"
)

var ErrGetItemReviewsQueryIsNotConstructed = errors.New(
	"GetItemReviewsQuery must be created via NewGetItemReviewsQuery constructor",
)

// GetItemReviewsQuery retrieves the reviews of one item, newest first.
// This is a public query; no caller identity is required.
type GetItemReviewsQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemReviewsQuery creates a validated item review query.
func NewGetItemReviewsQuery(itemID kernel.UUID) (GetItemReviewsQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemReviewsQuery{}, err
	}

	return GetItemReviewsQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemReviewsQueryIsNotConstructed)
}

// ItemID returns the identifier of the reviewed item.
func (q GetItemReviewsQuery) ItemID() kernel.UUID {
	return q.itemID
}

// ReviewDetails is the review read model shared by the review queries: the
// review row joined with the reviewer's name and the item's name.
type ReviewDetails struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	UserName  string
	ItemID    kernel.UUID
	ItemName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}
