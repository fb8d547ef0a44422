package queries

import (
	"context"
	"database/sql"
	"errors"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetItemQueryHandler reads one item with its reviews and rating summary.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for item detail queries.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error for an
// unknown item; an item without reviews has a zero average and an empty
// review list.
func (h GetItemQueryHandler) Handle(
	ctx context.Context,
	query GetItemQuery,
) (GetItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemQueryResponse{}, err
	}

	var resp GetItemQueryResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.name,
			i.description,
			i.image_url,
			i.price,
			i.category,
			i.stock_quantity,
			i.created_at,
			COALESCE(AVG(r.rating), 0),
			COUNT(r.id)
		FROM items i
		LEFT JOIN reviews r ON r.item_id = i.id
		WHERE i.id = ?
		GROUP BY i.id
	`, query.ItemID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.Name,
		&resp.Description,
		&resp.ImageURL,
		&resp.Price,
		&resp.Category,
		&resp.StockQuantity,
		&resp.CreatedAt,
		&resp.AverageRating,
		&resp.ReviewCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetItemQueryResponse{}, errs.NewObjectNotFoundError("itemId", query.ItemID())
	}
	if err != nil {
		return GetItemQueryResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetItemQueryResponse{}, err
	}
	resp.ID = itemID

	reviews, err := h.loadReviews(ctx, query.ItemID())
	if err != nil {
		return GetItemQueryResponse{}, err
	}
	resp.Reviews = reviews

	return resp, nil
}

func (h GetItemQueryHandler) loadReviews(
	ctx context.Context, itemID kernel.UUID,
) ([]ItemReview, error) {
	reviews := make([]ItemReview, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.user_id,
			u.name,
			r.rating,
			r.comment,
			r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.item_id = ?
		ORDER BY r.created_at DESC, r.id
	`, itemID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rv ItemReview
		var id, userID uuid.UUID

		err = rows.Scan(&id, &userID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt)
		if err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rv.ID = reviewID

		reviewerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}
		rv.UserID = reviewerID
		reviews = append(reviews, rv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
