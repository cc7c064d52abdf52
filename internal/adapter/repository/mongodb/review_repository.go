package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type reviewRepository struct {
	db *mongo.Database
}

func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) col() *mongo.Collection {
	return r.db.Collection(reviewsCollection)
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = newID()
	}
	if review.LikedBy == nil {
		review.LikedBy = []string{}
	}
	if _, err := r.col().InsertOne(ctx, review); err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return findOne[entity.Review](ctx, r.col(), byID(id), "Review")
}

func (r *reviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	return findAll[entity.Review](ctx, r.col(), bson.D{}, "reviews",
		options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}}))
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return findAll[entity.Review](ctx, r.col(), bson.D{{Key: "productId", Value: productID}}, "reviews",
		options.Find().SetSort(bson.D{{Key: "reviewDate", Value: -1}}))
}

// Like matches only reviews the email has not liked yet, so the membership
// check and the increment are one atomic update.
func (r *reviewRepository) Like(ctx context.Context, id, email string) (*entity.Review, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "likedBy", Value: bson.D{{Key: "$ne", Value: email}}}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "likeCount", Value: 1}}},
		{Key: "$push", Value: bson.D{{Key: "likedBy", Value: email}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var review entity.Review
	err := r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&review)
	if err == nil {
		return &review, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, errors.Internal("Failed to like review", err)
	}

	n, cerr := r.col().CountDocuments(ctx, byID(id))
	if cerr != nil {
		return nil, errors.Internal("Failed to like review", cerr)
	}
	if n == 0 {
		return nil, errors.NotFound("Review", nil)
	}
	return nil, errors.Conflict("You have already liked this review")
}

func (r *reviewRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteMany(ctx, r.col(), bson.D{{Key: "productId", Value: productID}}, "reviews")
}
