package queries

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves one catalog item together with its reviews and
// rating summary.
type GetItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a validated item detail query.
func NewGetItemQuery(itemID kernel.UUID) (GetItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemQuery{}, err
	}

	return GetItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// ItemID returns the identifier of the requested item.
func (q GetItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

// ItemReview is one review row embedded in the item detail.
type ItemReview struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// GetItemQueryResponse is the item detail read model: the catalog row plus
// its reviews and their aggregate rating.
type GetItemQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	ImageURL      string
	Price         float64
	Category      string
	StockQuantity int
	CreatedAt     time.Time

	AverageRating float64
	ReviewCount   int
	Reviews       []ItemReview
}
