package queries

import (
	"context"
	"database/sql"

	"withus/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemReviewsQueryHandler reads the reviews of one item.
type GetItemReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetItemReviewsQueryHandler creates a handler for item review queries.
func NewGetItemReviewsQueryHandler(db *gorm.DB) GetItemReviewsQueryHandler {
	return GetItemReviewsQueryHandler{db: db}
}

// Handle executes the query and returns the item's reviews, newest first.
// An unknown item yields an empty list.
func (h GetItemReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetItemReviewsQuery,
) ([]ReviewDetails, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return queryReviewDetails(ctx, h.db, `
		WHERE r.item_id = ?
		ORDER BY r.created_at DESC, r.id
	`, query.ItemID().Bytes())
}

// reviewDetailsSelect is the shared projection for the review queries.
const reviewDetailsSelect = `
		SELECT
			r.id,
			r.user_id,
			u.name,
			r.item_id,
			i.name,
			r.rating,
			r.comment,
			r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		JOIN items i ON i.id = r.item_id
`

func queryReviewDetails(
	ctx context.Context, db *gorm.DB, clause string, args ...any,
) ([]ReviewDetails, error) {
	reviews := make([]ReviewDetails, 0)

	rows, err := db.WithContext(ctx).Raw(reviewDetailsSelect+clause, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		detail, scanErr := scanReviewDetails(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		reviews = append(reviews, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

func scanReviewDetails(rows *sql.Rows) (ReviewDetails, error) {
	var detail ReviewDetails
	var id, userID, itemID uuid.UUID

	err := rows.Scan(
		&id,
		&userID,
		&detail.UserName,
		&itemID,
		&detail.ItemName,
		&detail.Rating,
		&detail.Comment,
		&detail.CreatedAt,
	)
	if err != nil {
		return ReviewDetails{}, err
	}

	reviewID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ReviewDetails{}, err
	}
	detail.ID = reviewID

	reviewerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return ReviewDetails{}, err
	}
	detail.UserID = reviewerID

	reviewedItemID, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return ReviewDetails{}, err
	}
	detail.ItemID = reviewedItemID

	return detail, nil
}
