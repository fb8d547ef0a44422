// Package review contains the review aggregate. Reviews have no lifecycle:
// they are validated once at creation and never mutated. The one-review-per
// (user, item) rule is enforced at the persistence boundary.
package review

import (
	"errors"
	"time"

	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/errs"
)

const (
	// MinRating is the lowest allowed star rating.
	MinRating = 1

	// MaxRating is the highest allowed star rating.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a customer rating of an item, with an optional comment.
type Review struct {
	id        kernel.UUID
	userID    kernel.UUID
	itemID    kernel.UUID
	rating    int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewReview creates a review with a rating in [MinRating, MaxRating].
func NewReview(id, userID, itemID kernel.UUID, rating int, comment string) (*Review, error) {
	r := &Review{
		comment:       comment,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setItemID(itemID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id, userID, itemID kernel.UUID, rating int, comment string, createdAt time.Time,
) (*Review, error) {
	r, err := NewReview(id, userID, itemID, rating, comment)
	if err != nil {
		return nil, err
	}

	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the instance came from a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// UserID returns the identifier of the reviewing user.
func (r *Review) UserID() kernel.UUID {
	return r.userID
}

// ItemID returns the identifier of the reviewed item.
func (r *Review) ItemID() kernel.UUID {
	return r.itemID
}

// Rating returns the star rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the creation timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Review) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	r.itemID = itemID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
