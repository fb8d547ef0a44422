package order

import (
	"errors"
	"fmt"
	"time"

	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - quantity is at least 1
//   - total price is the unit price at creation time multiplied by quantity,
//     snapshotted once and never recomputed
//   - delivery orders carry a non-empty delivery address
//   - cancellation reason is non-empty if and only if status is Cancelled
//
// Orders are created in Pending status and afterwards mutated only through
// ChangeStatus. They are never deleted.
type Order struct {
	id                 kernel.UUID
	userID             kernel.UUID
	itemID             kernel.UUID
	serviceType        ServiceType
	status             Status
	quantity           int
	totalPrice         float64
	deliveryAddress    string
	scheduledTime      *time.Time
	mobileNumber       string
	cancellationReason string
	createdAt          time.Time

	isConstructed bool
}

// NewOrder creates a pending order. unitPrice is the item price at the moment
// of creation; the total is snapshotted here and stays fixed even if the
// catalog price changes later.
func NewOrder(
	id, userID, itemID kernel.UUID,
	serviceType ServiceType,
	quantity int,
	unitPrice float64,
	deliveryAddress string,
	scheduledTime *time.Time,
	mobileNumber string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		scheduledTime: scheduledTime,
		mobileNumber:  mobileNumber,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setServiceType(serviceType),
		o.setQuantity(quantity),
		o.setTotalPrice(unitPrice, quantity),
		o.setDeliveryAddress(serviceType, deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including the status
// and cancellation reason as previously stored. The reason/status pairing is
// revalidated so corrupted rows cannot re-enter the domain.
func RestoreOrder(
	id, userID, itemID kernel.UUID,
	serviceType ServiceType,
	status Status,
	quantity int,
	totalPrice float64,
	deliveryAddress string,
	scheduledTime *time.Time,
	mobileNumber string,
	cancellationReason string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		scheduledTime: scheduledTime,
		mobileNumber:  mobileNumber,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItemID(itemID),
		o.setServiceType(serviceType),
		o.setQuantity(quantity),
		o.setDeliveryAddress(serviceType, deliveryAddress),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalPrice <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is not greater than 0", totalPrice))
	}
	o.totalPrice = totalPrice

	if err := o.applyStatus(status, cancellationReason); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the instance came from a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ItemID returns the identifier of the ordered item.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// ServiceType returns the fulfilment mode.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// TotalPrice returns the price snapshot taken at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// DeliveryAddress returns the delivery address (empty for in-person orders).
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ScheduledTime returns the requested pickup time, if any.
func (o *Order) ScheduledTime() *time.Time {
	return o.scheduledTime
}

// MobileNumber returns the customer's contact number.
func (o *Order) MobileNumber() string {
	return o.mobileNumber
}

// CancellationReason returns the reason recorded when the order was
// cancelled. Empty unless the status is Cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to a new status.
//
// Cancelling requires a non-empty reason, which is stored with the order.
// Any other target status clears a previously stored reason, keeping the
// reason/status invariant. The transition graph itself is permissive: any
// valid status may follow any other.
func (o *Order) ChangeStatus(next Status, cancellationReason string) error {
	if err := next.Validate(); err != nil {
		return err
	}

	return o.applyStatus(next, cancellationReason)
}

func (o *Order) applyStatus(next Status, cancellationReason string) error {
	if next == Cancelled {
		if cancellationReason == "" {
			return errs.NewValueIsRequiredError("cancellation reason")
		}
		o.status = Cancelled
		o.cancellationReason = cancellationReason
		return nil
	}

	o.status = next
	o.cancellationReason = ""
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	o.itemID = itemID
	return nil
}

func (o *Order) setServiceType(serviceType ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	o.serviceType = serviceType
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setTotalPrice(unitPrice float64, quantity int) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%v is not greater than 0", unitPrice))
	}
	o.totalPrice = unitPrice * float64(quantity)
	return nil
}

func (o *Order) setDeliveryAddress(serviceType ServiceType, deliveryAddress string) error {
	if serviceType == Delivery && deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
