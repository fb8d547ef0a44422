package commands

import (
	"context"
	"errors"

	"withus/internal/core/ports"

	"withus/internal/pkg/errs"
)

// ResetPasswordCommandHandler replaces a user's password after verifying a
// password reset token.
type ResetPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenService
	hasher     ports.PasswordHasher
}

// NewResetPasswordCommandHandler creates a handler for password resets.
func NewResetPasswordCommandHandler(
	uowFactory UserUoWFactory,
	tokens ports.TokenService,
	hasher ports.PasswordHasher,
) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		hasher:     hasher,
	}
}

// Handle verifies the token and stores the new password hash. A token whose
// subject no longer exists is treated the same as an invalid token.
func (h *ResetPasswordCommandHandler) Handle(
	ctx context.Context, cmd ResetPasswordCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID, err := h.tokens.VerifyPasswordResetToken(cmd.Token())
	if err != nil {
		return ports.ErrInvalidToken
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	u, err := uow.UserRepository().Get(ctx, userID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ports.ErrInvalidToken
	}
	if err != nil {
		return err
	}

	digest, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = u.ChangePassword(digest); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
