package queries

import (
	"context"

	"withus/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetUserReviewsQueryHandler reads one user's reviews.
type GetUserReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserReviewsQueryHandler creates a handler for user review queries.
func NewGetUserReviewsQueryHandler(db *gorm.DB) GetUserReviewsQueryHandler {
	return GetUserReviewsQueryHandler{db: db}
}

// Handle executes the query and returns the user's reviews, newest first.
// Returns services.ErrForbidden when the caller is neither the user nor an
// administrator.
func (h GetUserReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetUserReviewsQuery,
) ([]ReviewDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := services.RequireSelfOrAdmin(query.Caller(), query.UserID()); err != nil {
		return nil, err
	}

	return queryReviewDetails(ctx, h.db, `
		WHERE r.user_id = ?
		ORDER BY r.created_at DESC, r.id
	`, query.UserID().Bytes())
}
