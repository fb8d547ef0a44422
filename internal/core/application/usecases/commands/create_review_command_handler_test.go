package commands_test

import (
	"testing"

	"withus/internal/core/application/usecases/commands"
	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/ports"

	"withus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateReviewCommand(t *testing.T) commands.CreateReviewCommand {
	t.Helper()
	cmd, err := commands.NewCreateReviewCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, "exactly as pictured",
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateReviewCommand(t)
	itm := testItem(t, 9.5, 10)

	itemRepo := new(MockItemRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForUserAndItem", mock.Anything, cmd.UserID(), cmd.ItemID()).
			Return(false, nil).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	r, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, cmd.ReviewID(), r.ID())
	assert.Equal(t, 5, r.Rating())
	itemRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateReviewCommand(t)

	itemRepo := new(MockItemRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).
			Return(nil, errs.NewObjectNotFoundError("itemId", cmd.ItemID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_DuplicateReview(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateReviewCommand(t)
	itm := testItem(t, 9.5, 10)

	itemRepo := new(MockItemRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", mock.Anything, cmd.ItemID()).Return(itm, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForUserAndItem", mock.Anything, cmd.UserID(), cmd.ItemID()).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, ports.ErrDuplicateReview)
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateReviewCommand{} // not constructed properly
	h := commands.NewCreateReviewCommandHandler(new(MockReviewUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateReviewCommandIsNotConstructed)
}
