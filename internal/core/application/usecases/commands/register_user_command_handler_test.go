package commands_test

import (
	"errors"
	"testing"

	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"withus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRegisterUserCommand(t *testing.T) commands.RegisterUserCommand {
	t.Helper()
	cmd, err := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "Alice", "alice@example.com", "s3cret",
	)
	require.NoError(t, err)
	return cmd
}

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("digest", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(nil, errs.NewObjectNotFoundError("email", "alice@example.com")).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	u, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, cmd.UserID(), u.ID())
	assert.Equal(t, user.RoleCustomer, u.Role())
	assert.Equal(t, "digest", u.PasswordHash())
	hasher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)
	existing := testUser(t, user.RoleCustomer)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("digest", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly
	h := commands.NewRegisterUserCommandHandler(new(MockUserUoWFactory), new(MockPasswordHasher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}

func TestRegisterUserCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret").Return("", errors.New("hash error")).Once()

	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	cmd := newRegisterUserCommand(t)

	hasher := new(MockPasswordHasher)
	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		hasher.On("Hash", "s3cret").Return("digest", nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(nil, errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrEmailTaken)
	uow.AssertExpectations(t)
}
