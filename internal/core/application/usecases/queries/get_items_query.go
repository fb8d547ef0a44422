// Package queries contains read-only operations on the database.
// Implements the query side of the CQRS architecture: handlers bypass the
// domain model and read projections straight from SQL for performance.
package queries

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/pkg/guard"
)

var (
	ErrGetItemsQueryIsNotConstructed = errors.New(
		"GetItemsQuery must be created via NewGetItemsQuery constructor",
	)

	// ErrPaginationIsInvalid is returned for a negative offset or a
	// non-positive limit.
	ErrPaginationIsInvalid = errors.New("offset must be >= 0 and limit must be > 0")
)

// DefaultItemsLimit caps an items page when the caller does not choose one.
const DefaultItemsLimit = 20

// GetItemsQuery retrieves a page of the catalog, newest items first.
// An empty category means no category filter.
//
// Example:
//
//	query := NewGetItemsQuery("kitchen", 0, 20)
//	handler := NewGetItemsQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list items: %w", err)
//	}
type GetItemsQuery struct {
	category string
	offset   int
	limit    int

	guard guard.ConstructorGuard
}

// NewGetItemsQuery creates a validated catalog page query.
func NewGetItemsQuery(category string, offset, limit int) (GetItemsQuery, error) {
	if limit == 0 {
		limit = DefaultItemsLimit
	}
	if offset < 0 || limit < 0 {
		return GetItemsQuery{}, ErrPaginationIsInvalid
	}

	return GetItemsQuery{
		category: category,
		offset:   offset,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsQueryIsNotConstructed)
}

// Category returns the category filter, empty for no filter.
func (q GetItemsQuery) Category() string {
	return q.category
}

// Offset returns the page offset.
func (q GetItemsQuery) Offset() int {
	return q.offset
}

// Limit returns the page size.
func (q GetItemsQuery) Limit() int {
	return q.limit
}

// GetItemsQueryResponse is one catalog row of the items page.
type GetItemsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	ImageURL      string
	Price         float64
	Category      string
	StockQuantity int
	CreatedAt     time.Time
}
