package queries

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/pkg/guard"
)

var (
	ErrGetLowStockItemsQueryIsNotConstructed = errors.New(
		"GetLowStockItemsQuery must be created via NewGetLowStockItemsQuery constructor",
	)

	// ErrThresholdIsInvalid is returned for a non-positive stock threshold.
	ErrThresholdIsInvalid = errors.New("threshold must be > 0")
)

// GetLowStockItemsQuery retrieves items whose stock fell below a threshold.
// Feeds the periodic low-stock report.
type GetLowStockItemsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockItemsQuery creates a validated low-stock query.
func NewGetLowStockItemsQuery(threshold int) (GetLowStockItemsQuery, error) {
	if threshold <= 0 {
		return GetLowStockItemsQuery{}, ErrThresholdIsInvalid
	}

	return GetLowStockItemsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockItemsQueryIsNotConstructed)
}

// Threshold returns the exclusive stock bound.
func (q GetLowStockItemsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockItemsQueryResponse is one item running low on stock.
type GetLowStockItemsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	StockQuantity int
}
