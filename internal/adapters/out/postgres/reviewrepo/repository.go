package reviewrepo

import (
	"context"
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/review"
	"withus/internal/core/ports"

	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review. A violation of the (user, item) unique index is
// reported as ports.ErrDuplicateReview, covering the race where two
// submissions pass the handler's existence check concurrently.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrDuplicateReview
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsForUserAndItem reports whether the user has already reviewed the item.
func (r *GormReviewRepository) ExistsForUserAndItem(
	ctx context.Context, userID, itemID kernel.UUID,
) (bool, error) {
	if err := errors.Join(userID.Validate(), itemID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("user_id = ? AND item_id = ?", userID.Bytes(), itemID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
