package queries

import (
	"context"

	"withus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockItemsQueryHandler reads the items running low on stock.
type GetLowStockItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockItemsQueryHandler creates a handler for low-stock queries.
func NewGetLowStockItemsQueryHandler(db *gorm.DB) GetLowStockItemsQueryHandler {
	return GetLowStockItemsQueryHandler{db: db}
}

// Handle executes the query and returns items with stock strictly below the
// threshold, lowest stock first.
func (h GetLowStockItemsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockItemsQuery,
) ([]GetLowStockItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetLowStockItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			stock_quantity
		FROM items
		WHERE stock_quantity < ?
		ORDER BY stock_quantity, name
	`, query.Threshold()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itm GetLowStockItemsQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &itm.Name, &itm.StockQuantity); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itm.ID = itemID
		items = append(items, itm)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
