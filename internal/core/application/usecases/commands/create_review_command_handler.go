package commands

import (
	"context"

	"withus/internal/core/domain/model/review"
	"withus/internal/core/ports"
)

// CreateReviewCommandHandler handles review creation: the reviewed item must
// exist, and the (user, item) pair must not have been reviewed before. The
// unique index underneath backs up the existence check under races.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewCreateReviewCommandHandler creates a handler for review creation.
func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{uowFactory: uowFactory}
}

// Handle processes the review and returns it once persisted. Fails with an
// object-not-found error for an unknown item and ports.ErrDuplicateReview
// for a repeated (user, item) pair.
func (h *CreateReviewCommandHandler) Handle(
	ctx context.Context, cmd CreateReviewCommand,
) (*review.Review, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ItemRepository().Get(ctx, cmd.ItemID()); err != nil {
		return nil, err
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsForUserAndItem(ctx, cmd.UserID(), cmd.ItemID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ports.ErrDuplicateReview
	}

	newReview, err := review.NewReview(
		cmd.ReviewID(), cmd.UserID(), cmd.ItemID(), cmd.Rating(), cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newReview, nil
}
