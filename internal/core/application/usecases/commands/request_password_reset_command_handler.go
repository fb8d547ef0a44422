package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"withus/internal/core/ports"

	"withus/internal/pkg/errs"
)

// RequestPasswordResetCommandHandler issues a reset token for a registered
// email and mails the reset link. To prevent account enumeration the handler
// reports success whether or not the email exists, and the mail itself is
// best effort.
type RequestPasswordResetCommandHandler struct {
	uowFactory      UserUoWFactory
	tokens          ports.TokenService
	notifier        ports.Notifier
	frontendBaseURL string
	logger          *slog.Logger
}

// NewRequestPasswordResetCommandHandler creates a handler for reset requests.
// frontendBaseURL is the external base used to build the reset link.
func NewRequestPasswordResetCommandHandler(
	uowFactory UserUoWFactory,
	tokens ports.TokenService,
	notifier ports.Notifier,
	frontendBaseURL string,
	logger *slog.Logger,
) RequestPasswordResetCommandHandler {
	return RequestPasswordResetCommandHandler{
		uowFactory:      uowFactory,
		tokens:          tokens,
		notifier:        notifier,
		frontendBaseURL: frontendBaseURL,
		logger:          logger,
	}
}

// Handle processes the reset request. An unknown email is not an error.
func (h *RequestPasswordResetCommandHandler) Handle(
	ctx context.Context, cmd RequestPasswordResetCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Lookup only, no transaction needed.
	userRepo := h.uowFactory.Create().UserRepository()

	u, err := userRepo.GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := h.tokens.IssuePasswordResetToken(u)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(h.frontendBaseURL, "/"), token)

	if h.notifier != nil {
		if err = h.notifier.PasswordReset(ctx, u, resetLink); err != nil {
			h.logger.WarnContext(ctx, "failed to send password reset email",
				"email", u.Email(), "error", err)
		}
	}

	return nil
}
