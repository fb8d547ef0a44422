package queries

import (
	"context"

	"withus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemsQueryHandler reads catalog pages from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemsQueryHandler creates a handler for catalog page queries.
func NewGetItemsQueryHandler(db *gorm.DB) GetItemsQueryHandler {
	return GetItemsQueryHandler{db: db}
}

// Handle executes the query and returns one page of the catalog, newest
// first. An empty category filter returns items from every category.
func (h GetItemsQueryHandler) Handle(
	ctx context.Context,
	query GetItemsQuery,
) ([]GetItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			image_url,
			price,
			category,
			stock_quantity,
			created_at
		FROM items
		WHERE (? = '' OR category = ?)
		ORDER BY created_at DESC, id
		OFFSET ? LIMIT ?
	`, query.Category(), query.Category(), query.Offset(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itm GetItemsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&itm.Name,
			&itm.Description,
			&itm.ImageURL,
			&itm.Price,
			&itm.Category,
			&itm.StockQuantity,
			&itm.CreatedAt,
		)
		if err != nil {
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
