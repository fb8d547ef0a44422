package queries

import (
	"context"
	"database/sql"
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/services"
	"withus/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with buyer and item details.
// Ownership is checked against the loaded row, so a customer probing another
// user's order gets a forbidden error rather than a not-found one.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error for an
// unknown order and services.ErrForbidden when the caller neither owns the
// order nor is an administrator.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	row := h.db.WithContext(ctx).Raw(orderDetailsSelect+`
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	detail, err := scanOrderDetails(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetails{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderDetails{}, err
	}

	if err = services.RequireSelfOrAdmin(query.Caller(), detail.UserID); err != nil {
		return OrderDetails{}, err
	}

	return detail, nil
}

// orderDetailsSelect is the shared projection for the order queries.
const orderDetailsSelect = `
		SELECT
			o.id,
			o.user_id,
			u.name,
			o.item_id,
			i.name,
			i.image_url,
			o.service_type,
			o.status,
			o.quantity,
			o.total_price,
			o.delivery_address,
			o.scheduled_time,
			o.mobile_number,
			o.cancellation_reason,
			o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN items i ON i.id = o.item_id
`

// rowScanner covers both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderDetails(row rowScanner) (OrderDetails, error) {
	var detail OrderDetails
	var id, userID, itemID uuid.UUID
	var serviceType string
	var status int
	var scheduledTime sql.NullTime

	err := row.Scan(
		&id,
		&userID,
		&detail.UserName,
		&itemID,
		&detail.ItemName,
		&detail.ItemImageURL,
		&serviceType,
		&status,
		&detail.Quantity,
		&detail.TotalPrice,
		&detail.DeliveryAddress,
		&scheduledTime,
		&detail.MobileNumber,
		&detail.CancellationReason,
		&detail.CreatedAt,
	)
	if err != nil {
		return OrderDetails{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetails{}, err
	}
	detail.ID = orderID

	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return OrderDetails{}, err
	}
	detail.UserID = ownerID

	orderedItemID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return OrderDetails{}, err
	}
	detail.ItemID = orderedItemID

	detail.ServiceType = order.ServiceType(serviceType)
	detail.Status = order.Status(status)
	if scheduledTime.Valid {
		t := scheduledTime.Time
		detail.ScheduledTime = &t
	}

	return detail, nil
}
