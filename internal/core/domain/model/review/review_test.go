package review_test

import (
	"testing"
	"time"

	"withus/internal/core/domain/model/kernel"
	"withus/internal/core/domain/model/review"
	"withus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := review.NewReview(id, kernel.NewUUID(), kernel.NewUUID(), 4, "very fresh")

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, id.IsEqual(r.ID()))
		assert.Equal(t, 4, r.Rating())
		assert.Equal(t, "very fresh", r.Comment())
	})

	t.Run("rating bounds", func(t *testing.T) {
		for _, rating := range []int{review.MinRating, review.MaxRating} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "")
			require.NoError(t, err)
		}

		for _, rating := range []int{0, 6, -1} {
			_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), rating, "")
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("empty comment is allowed", func(t *testing.T) {
		_, err := review.NewReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, "")
		require.NoError(t, err)
	})

	t.Run("zero ids", func(t *testing.T) {
		_, err := review.NewReview(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, 3, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreReview(t *testing.T) {
	created := time.Date(2025, 4, 20, 14, 0, 0, 0, time.UTC)

	r, err := review.RestoreReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2, "bruised", created)

	require.NoError(t, err)
	assert.Equal(t, created, r.CreatedAt())
}

func TestReview_Validate_NotConstructed(t *testing.T) {
	var r review.Review

	require.ErrorIs(t, r.Validate(), review.ErrReviewIsNotConstructed)
}
