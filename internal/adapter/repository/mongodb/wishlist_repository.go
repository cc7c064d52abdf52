package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type wishlistRepository struct {
	db *mongo.Database
}

func NewWishlistRepository(db *mongo.Database) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) col() *mongo.Collection {
	return r.db.Collection(wishlistsCollection)
}

func (r *wishlistRepository) Add(ctx context.Context, email, productID string) (*entity.WishlistItem, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "productId", Value: productID}}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "_id", Value: newID()},
		{Key: "addedAt", Value: time.Now()},
	}}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.WishlistItem
	if err := r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, errors.Internal("Failed to add to wishlist", err)
	}
	return &saved, nil
}

func (r *wishlistRepository) ListByEmail(ctx context.Context, email string) ([]*entity.WishlistItem, error) {
	return findAll[entity.WishlistItem](ctx, r.col(), bson.D{{Key: "email", Value: email}}, "wishlist items",
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}}))
}

func (r *wishlistRepository) Remove(ctx context.Context, email, productID string) error {
	return deleteOne(ctx, r.col(), bson.D{{Key: "email", Value: email}, {Key: "productId", Value: productID}}, "Wishlist item")
}

func (r *wishlistRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteMany(ctx, r.col(), bson.D{{Key: "productId", Value: productID}}, "wishlist items")
}
