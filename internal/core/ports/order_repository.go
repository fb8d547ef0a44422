package ports

import (
	"context"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are inserted once and afterwards change only through status
// updates; they are never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and cancellation reason changes to an
	// existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
