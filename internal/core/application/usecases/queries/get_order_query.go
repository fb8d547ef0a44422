package queries

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/services"
	"withus/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item and buyer details.
// Customers may read only their own orders; administrators may read any.
//
// Example:
//
//	query := NewGetOrderQuery(orderID, caller)
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	caller  services.Caller

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a validated order detail query.
func NewGetOrderQuery(orderID kernel.UUID, caller services.Caller) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), caller.ID.Validate(), caller.Role.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		caller:  caller,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Caller returns the identity issuing the query.
func (q GetOrderQuery) Caller() services.Caller {
	return q.caller
}

// OrderDetails is the order read model shared by the order queries: the
// order row joined with the buyer's name and the ordered item's name and
// image.
type OrderDetails struct {
	ID                 kernel.UUID
	UserID             kernel.UUID
	UserName           string
	ItemID             kernel.UUID
	ItemName           string
	ItemImageURL       string
	ServiceType        order.ServiceType
	Status             order.Status
	Quantity           int
	TotalPrice         float64
	DeliveryAddress    string
	ScheduledTime      *time.Time
	MobileNumber       string
	CancellationReason string
	CreatedAt          time.Time
}
