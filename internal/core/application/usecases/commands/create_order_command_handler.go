package commands

import (
	"context"
	"log/slog"

	"withus/internal/core/domain/model/order"
	"withus/internal/core/ports"
)

// CreateOrderCommandHandler handles order creation: it resolves the item,
// reserves stock atomically, snapshots the total price and persists the
// pending order. The admin notification is sent only after the transaction
// commits and is never allowed to fail the operation.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the persisted
// order. Fails with an object-not-found error for an unknown item and with
// ports.ErrInsufficientStock when the stock ledger rejects the reservation.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	itm, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	if err = itemRepo.ReserveStock(ctx, cmd.ItemID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.UserID(), cmd.ItemID(),
		cmd.ServiceType(), cmd.Quantity(), itm.Price(),
		cmd.DeliveryAddress(), cmd.ScheduledTime(), cmd.MobileNumber(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	buyer, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Best effort: the order is already committed, a failed notification
	// is only logged.
	if h.notifier != nil {
		if err = h.notifier.OrderPlaced(ctx, newOrder, buyer, itm); err != nil {
			h.logger.WarnContext(ctx, "failed to notify admin about new order",
				"orderId", newOrder.ID().String(), "error", err)
		}
	}

	return newOrder, nil
}
