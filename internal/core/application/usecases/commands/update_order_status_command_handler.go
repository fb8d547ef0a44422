package commands

import (
	"context"
	"log/slog"

	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/services"
	"withus/internal/core/ports"
)

// UpdateOrderStatusCommandHandler drives admin-issued status transitions.
// Authorization is checked before any database work; the user notification
// is sent only after the transaction commits.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the transition and returns the updated order.
// Fails with services.ErrForbidden for non-admin callers, an
// object-not-found error for an unknown order, and a value-required error
// when a cancellation carries no reason.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := services.RequireAdmin(cmd.Caller()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ChangeStatus(cmd.Status(), cmd.CancellationReason()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	owner, err := uow.UserRepository().Get(ctx, o.UserID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if h.notifier != nil {
		if err = h.notifier.OrderStatusChanged(ctx, o, owner); err != nil {
			h.logger.WarnContext(ctx, "failed to notify user about status change",
				"orderId", o.ID().String(), "status", o.Status().String(), "error", err)
		}
	}

	return o, nil
}
