package queries

import (
	"context"

	"withus/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads one user's order history.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for order history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the user's orders, newest first.
// Returns services.ErrForbidden when the caller is neither the user nor an
// administrator. An unknown user simply yields an empty list.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.RequireSelfOrAdmin(query.Caller(), query.UserID()); err != nil {
		return nil, err
	}

	orders := make([]OrderDetails, 0)

	rows, err := h.db.WithContext(ctx).Raw(orderDetailsSelect+`
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.UserID().Bytes()).Rows()
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
