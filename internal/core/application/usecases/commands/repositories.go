// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, then best-effort notification.
package commands

import (
	"context"

	"withus/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the narrowest combination of
// repositories it actually touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ItemRepoFactory provides access to the item repository within a transaction.
	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// UserUoW manages transactions for user-only operations
	// (registration, password reset).
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// OrderUoW manages transactions for the order lifecycle. Order
	// creation reserves item stock and reads the buyer for notification,
	// so the item and user repositories take part in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		UserRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReviewUoW manages transactions for review creation, which checks
	// the reviewed item exists.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		ItemRepoFactory
	}

	// ReviewUoWFactory creates review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
