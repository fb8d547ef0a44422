package commands

import (
	"errors"

	"withus/internal/pkg/guard"
)

var (
	// ErrResetPasswordCommandIsNotConstructed is returned when the command
	// was not built via NewResetPasswordCommand.
	ErrResetPasswordCommandIsNotConstructed = errors.New(
		"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
	)

	// ErrResetTokenIsRequired is returned when the reset token is missing.
	ErrResetTokenIsRequired = errors.New("reset token is required")
)

// ResetPasswordCommand sets a new password using a valid reset token.
//
// Reset tokens are not invalidated after use: a still-valid token can be
// replayed until it expires naturally. This mirrors the intended behavior of
// the reset flow and keeps token verification stateless.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	token       string
	newPassword string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a validated password reset.
func NewResetPasswordCommand(token, newPassword string) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if token == "" {
		return ResetPasswordCommand{}, ErrResetTokenIsRequired
	}
	if newPassword == "" {
		return ResetPasswordCommand{}, ErrPasswordIsRequired
	}
	cmd.token = token
	cmd.newPassword = newPassword

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Token returns the password reset token.
func (c ResetPasswordCommand) Token() string {
	return c.token
}

// NewPassword returns the replacement plain-text password.
func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}
