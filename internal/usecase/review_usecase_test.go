package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/pkg/errors"
)

func TestCreateReviewWritesBothCopies(t *testing.T) {
	ctx := context.Background()
	products := newMemProducts(&entity.Product{ID: "p1"})
	reviews := newMemReviews()
	users := newMemUsers(&entity.User{Email: "ann@example.com", Name: "Ann", PhotoURL: "https://img/ann.png"})
	uc := NewReviewUseCase(reviews, products, users)

	review, err := uc.CreateReview(ctx, "ann@example.com", "p1", CreateReviewInput{Rating: 5, Comment: " Lovely "})
	require.NoError(t, err)

	assert.Equal(t, "Lovely", review.Comment)
	assert.Equal(t, "Ann", review.ReviewerName)
	assert.False(t, review.ReviewDate.IsZero())

	p, err := products.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, review.ID, p.Reviews[0].ID)

	listed, err := uc.ListProductReviews(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = uc.CreateReview(ctx, "ann@example.com", "p1", CreateReviewInput{Rating: 6})
	assert.True(t, errors.Is(err, errors.CodeValidation))
	_, err = uc.CreateReview(ctx, "ann@example.com", "ghost", CreateReviewInput{Rating: 4})
	assert.True(t, errors.IsNotFound(err))
}

func TestLikeReviewOncePerUser(t *testing.T) {
	ctx := context.Background()
	products := newMemProducts(&entity.Product{ID: "p1"})
	uc := NewReviewUseCase(newMemReviews(), products, newMemUsers())

	review, err := uc.CreateReview(ctx, "ann@example.com", "p1", CreateReviewInput{Rating: 4})
	require.NoError(t, err)

	liked, err := uc.LikeReview(ctx, review.ID, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, liked.LikeCount)
	assert.Equal(t, []string{"bob@example.com"}, liked.LikedBy)

	_, err = uc.LikeReview(ctx, review.ID, "bob@example.com")
	assert.True(t, errors.Is(err, errors.CodeConflict))

	p, err := products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Reviews[0].LikeCount)
}
