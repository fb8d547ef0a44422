// Package reviewrepo implements review persistence. The (user, item)
// uniqueness rule lives here as a composite unique index.
package reviewrepo

import (
	"time"

	"withus/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// The composite unique index enforces one review per user per item even
// under concurrent submissions.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_user_item"`
	ItemID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_user_item"`
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		ItemID:    aggregate.ItemID().Bytes(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}
