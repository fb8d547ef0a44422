package ports

import (
	"context"
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
)

// ErrEmailTaken is returned by Add when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Returns ErrEmailTaken when the email
	// collides with an existing account.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user (password resets).
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by its unique email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
