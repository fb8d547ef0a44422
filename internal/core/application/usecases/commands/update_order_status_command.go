package commands

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/services"

	"withus/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed is returned when the command
// was not built via NewUpdateOrderStatusCommand.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an administrator's decision to move an
// order to a new status. Cancellations carry the mandatory reason; the
// reason requirement itself is enforced by the order aggregate.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	status             order.Status
	cancellationReason string
	caller             services.Caller

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status transition request.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID, status order.Status, cancellationReason string, caller services.Caller,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		cancellationReason: cancellationReason,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setCaller(caller),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// CancellationReason returns the reason accompanying a cancellation.
func (c UpdateOrderStatusCommand) CancellationReason() string {
	return c.cancellationReason
}

// Caller returns the identity issuing the transition.
func (c UpdateOrderStatusCommand) Caller() services.Caller {
	return c.caller
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setCaller(caller services.Caller) error {
	if err := caller.ID.Validate(); err != nil {
		return err
	}
	if err := caller.Role.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}
