package commands_test

import (
	"errors"
	"testing"

	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/order"
	"withus/internal/core/domain/model/user"
	"withus/internal/core/ports"

	"withus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Delivery, 3, "12 High St", nil, "010-1234-5678",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	itm := testItem(t, 9.5, 10)
	buyer := testUser(t, user.RoleCustomer)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		itemRepo.On("ReserveStock", mock.Anything, cmd.ItemID(), 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, cmd.UserID()).Return(buyer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("OrderPlaced", mock.Anything,
			mock.AnythingOfType("*order.Order"), buyer, itm).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier, discardLogger())
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, cmd.OrderID(), o.ID())
	assert.Equal(t, order.Pending, o.Status())
	assert.InDelta(t, 28.5, o.TotalPrice(), 0.001)
	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	notFound := errs.NewObjectNotFoundError("itemId", cmd.ItemID())

	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	itm := testItem(t, 9.5, 1)

	itemRepo := new(MockItemRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		itemRepo.On("ReserveStock", mock.Anything, cmd.ItemID(), 3).
			Return(ports.ErrInsufficientStock).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrInsufficientStock)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	itm := testItem(t, 9.5, 10)
	buyer := testUser(t, user.RoleCustomer)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		itemRepo.On("ReserveStock", mock.Anything, cmd.ItemID(), 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, cmd.UserID()).Return(buyer, nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_NotifierFailureDoesNotFailOrder(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)
	itm := testItem(t, 9.5, 10)
	buyer := testUser(t, user.RoleCustomer)

	itemRepo := new(MockItemRepository)
	orderRepo := new(MockOrderRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		itemRepo.On("ReserveStock", mock.Anything, cmd.ItemID(), 3).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, cmd.UserID()).Return(buyer, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("OrderPlaced", mock.Anything,
			mock.AnythingOfType("*order.Order"), buyer, itm).
			Return(errors.New("smtp unreachable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, notifier, discardLogger())
	o, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, o)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}
