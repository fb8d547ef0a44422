package ports

import (
	"context"
	"errors"

	"withus/internal/core/domain/model/item"
	"withus/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is returned by ReserveStock when the item exists but
// does not have enough remaining stock for the requested quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// ItemRepository defines the persistence contract for catalog items,
// including the stock ledger.
type ItemRepository interface {
	// Add persists a new catalog item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// ReserveStock atomically decrements the item's stock by quantity.
	// The check and the decrement are a single conditional write, so two
	// concurrent reservations can never drive stock negative: the losing
	// reservation gets ErrInsufficientStock and performs no mutation.
	// This is the only operation in the system that writes stock.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error
}
