package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllReviewsQueryHandler reads the storefront review feed.
type GetAllReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllReviewsQueryHandler creates a handler for the review feed.
func NewGetAllReviewsQueryHandler(db *gorm.DB) GetAllReviewsQueryHandler {
	return GetAllReviewsQueryHandler{db: db}
}

// Handle executes the query and returns every review, newest first.
func (h GetAllReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetAllReviewsQuery,
) ([]ReviewDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryReviewDetails(ctx, h.db, `
		ORDER BY r.created_at DESC, r.id
	`)
}
