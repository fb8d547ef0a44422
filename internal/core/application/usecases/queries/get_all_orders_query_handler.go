package queries

import (
	"context"

	"withus/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order book for administrators.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for the order overview.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order, newest first.
// Returns services.ErrForbidden for non-admin callers.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.RequireAdmin(query.Caller()); err != nil {
		return nil, err
	}

	orders := make([]OrderDetails, 0)

	rows, err := h.db.WithContext(ctx).Raw(orderDetailsSelect + `
		ORDER BY o.created_at DESC, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		detail, scanErr := scanOrderDetails(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
