package ports

import (
	"context"

	"withus/internal/core/domain/model/item"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/model/user"
)

// StockAlertLine is one row of the periodic low-stock report.
type StockAlertLine struct {
	ItemName string
	Stock    int
}

// Notifier is the outbound notification gateway. Every method is
// best-effort: callers log a returned error and move on, and no business
// operation ever fails or rolls back because a notification could not be
// sent. The corresponding write is always committed before a notifier
// method is invoked.
type Notifier interface {
	// OrderPlaced tells the shop administrator that a new order arrived.
	OrderPlaced(ctx context.Context, o *order.Order, u *user.User, i *item.Item) error

	// OrderStatusChanged tells the owning user that an administrator
	// moved their order to a new status.
	OrderStatusChanged(ctx context.Context, o *order.Order, u *user.User) error

	// PasswordReset sends the user a password reset link.
	PasswordReset(ctx context.Context, u *user.User, resetLink string) error

	// StockAlert sends the administrator the low-stock report.
	StockAlert(ctx context.Context, lines []StockAlertLine) error
}
