package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) col() *firestore.CollectionRef {
	return r.client.Collection(reviewsCollection)
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = r.col().NewDoc().ID
	}
	if review.LikedBy == nil {
		review.LikedBy = []string{}
	}

	if _, err := r.col().Doc(review.ID).Set(ctx, review); err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return getDoc[entity.Review](ctx, r.col().Doc(id), "Review")
}

func (r *firestoreReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	return decodeAll[entity.Review](r.col().OrderBy("reviewDate", firestore.Desc).Documents(ctx), "reviews")
}

func (r *firestoreReviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return decodeAll[entity.Review](r.col().Where("productId", "==", productID).Documents(ctx), "reviews")
}

// Like checks membership and increments inside one transaction.
func (r *firestoreReviewRepository) Like(ctx context.Context, id, email string) (*entity.Review, error) {
	ref := r.col().Doc(id)
	var review entity.Review

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Review", err)
			}
			return err
		}
		if err := doc.DataTo(&review); err != nil {
			return err
		}
		if review.LikedByUser(email) {
			return errors.Conflict("You have already liked this review")
		}

		review.LikeCount++
		review.LikedBy = append(review.LikedBy, email)
		return tx.Update(ref, []firestore.Update{
			{Path: "likeCount", Value: firestore.Increment(1)},
			{Path: "likedBy", Value: firestore.ArrayUnion(email)},
		})
	})
	if err != nil {
		return nil, passAppError(err, "Failed to like review")
	}
	return &review, nil
}

func (r *firestoreReviewRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteWhere(ctx, r.client, r.col().Where("productId", "==", productID), "reviews")
}
