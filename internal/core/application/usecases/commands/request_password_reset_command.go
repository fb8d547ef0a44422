package commands

import (
	"errors"

	"withus/internal/pkg/guard"
)

// ErrRequestPasswordResetCommandIsNotConstructed is returned when the
// command was not built via NewRequestPasswordResetCommand.
var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand asks for a password reset link to be emailed.
// The operation reveals nothing about whether the email is registered.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a validated reset request.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	cmd := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if email == "" {
		return RequestPasswordResetCommand{}, ErrEmailIsRequired
	}
	cmd.email = email

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the address the reset link is requested for.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}
