package commands

import (
	"context"
	"errors"

	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"withus/internal/pkg/errs"
)

// RegisterUserCommandHandler handles account registration. The duplicate
// email rule is checked both here and by the unique index underneath, so a
// race between two registrations still yields ports.ErrEmailTaken for the
// loser.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for registrations.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory, hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration and returns the persisted user.
func (h *RegisterUserCommandHandler) Handle(
	ctx context.Context, cmd RegisterUserCommand,
) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	digest, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	_, err = userRepo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return nil, ports.ErrEmailTaken
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Name(), cmd.Email(), digest, user.RoleCustomer)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
