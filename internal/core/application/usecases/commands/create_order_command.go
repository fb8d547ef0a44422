package commands

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"

	"withus/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// built via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to order an item.
// The unit price is not part of the command: it is read from the catalog
// inside the handler's transaction and snapshotted into the order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	itemID          kernel.UUID
	serviceType     order.ServiceType
	quantity        int
	deliveryAddress string
	scheduledTime   *time.Time
	mobileNumber    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order request. Delivery orders
// must carry a delivery address; quantity must be at least 1.
func NewCreateOrderCommand(
	orderID, userID, itemID kernel.UUID,
	serviceType order.ServiceType,
	quantity int,
	deliveryAddress string,
	scheduledTime *time.Time,
	mobileNumber string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		scheduledTime: scheduledTime,
		mobileNumber:  mobileNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setItemID(itemID),
		cmd.setServiceType(serviceType),
		cmd.setQuantity(quantity),
		cmd.setDeliveryAddress(serviceType, deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ItemID returns the identifier of the ordered item.
func (c CreateOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ServiceType returns the requested fulfilment mode.
func (c CreateOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

// Quantity returns the requested quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// DeliveryAddress returns the delivery address (empty for in-person orders).
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// ScheduledTime returns the requested pickup time, if any.
func (c CreateOrderCommand) ScheduledTime() *time.Time {
	return c.scheduledTime
}

// MobileNumber returns the customer's contact number.
func (c CreateOrderCommand) MobileNumber() string {
	return c.mobileNumber
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateOrderCommand) setServiceType(serviceType order.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	c.serviceType = serviceType
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(serviceType order.ServiceType, address string) error {
	if serviceType == order.Delivery && address == "" {
		return ErrDeliveryAddressIsRequired
	}
	c.deliveryAddress = address
	return nil
}

var (
	// ErrQuantityIsInvalid is returned for a quantity below 1.
	ErrQuantityIsInvalid = errors.New("quantity must be at least 1")

	// ErrDeliveryAddressIsRequired is returned when a delivery order has
	// no delivery address.
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required for delivery orders")
)
