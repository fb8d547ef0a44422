package commands

import (
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/review"

	"withus/internal/pkg/errs"
	"withus/internal/pkg/guard"
)

// ErrCreateReviewCommandIsNotConstructed is returned when the command was
// not built via NewCreateReviewCommand.
var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a customer's review of an item.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	userID   kernel.UUID
	itemID   kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a validated review request. The rating
// range is validated here and again by the review aggregate.
func NewCreateReviewCommand(
	reviewID, userID, itemID kernel.UUID, rating int, comment string,
) (CreateReviewCommand, error) {
	cmd := CreateReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setUserID(userID),
		cmd.setItemID(itemID),
		cmd.setRating(rating),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// UserID returns the identifier of the reviewing user.
func (c CreateReviewCommand) UserID() kernel.UUID {
	return c.userID
}

// ItemID returns the identifier of the reviewed item.
func (c CreateReviewCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Rating returns the star rating.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional comment.
func (c CreateReviewCommand) Comment() string {
	return c.comment
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}
	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateReviewCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.MinRating, review.MaxRating)
	}
	c.rating = rating
	return nil
}
