package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetItemCategoriesQueryHandler reads the distinct category names in use.
type GetItemCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetItemCategoriesQueryHandler creates a handler for category queries.
func NewGetItemCategoriesQueryHandler(db *gorm.DB) GetItemCategoriesQueryHandler {
	return GetItemCategoriesQueryHandler{db: db}
}

// Handle executes the query and returns the sorted distinct categories.
func (h GetItemCategoriesQueryHandler) Handle(
	ctx context.Context,
	query GetItemCategoriesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]string, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT category
		FROM items
		ORDER BY category
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		if err = rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
