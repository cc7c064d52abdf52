package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview stores the review standalone and embeds a copy in the product.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, email, productID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.Validation("rating must be between 1 and 5", nil)
	}
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:            uuid.NewString(),
		ProductID:     productID,
		ReviewerEmail: email,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
		ReviewDate:    time.Now(),
		LikedBy:       []string{},
	}
	if user, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		review.ReviewerName = user.Name
		review.ReviewerPhoto = user.PhotoURL
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	if err := uc.productRepo.AddReview(ctx, productID, *review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	return uc.reviewRepo.List(ctx)
}

func (uc *ReviewUseCase) ListProductReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return uc.reviewRepo.ListByProduct(ctx, productID)
}

// LikeReview records the caller's like and mirrors the new count onto the
// product's embedded copy.
func (uc *ReviewUseCase) LikeReview(ctx context.Context, id, email string) (*entity.Review, error) {
	review, err := uc.reviewRepo.Like(ctx, id, email)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.SetReviewLikes(ctx, review.ProductID, *review); err != nil && !errors.IsNotFound(err) {
		logger.Ctx(ctx).Warn().Err(err).Str("review_id", id).Msg("failed to sync embedded review likes")
	}

	return review, nil
}
