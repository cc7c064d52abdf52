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

type cartRepository struct {
	db *mongo.Database
}

func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) col() *mongo.Collection {
	return r.db.Collection(cartsCollection)
}

func (r *cartRepository) Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	filter := bson.D{{Key: "email", Value: item.Email}, {Key: "productId", Value: item.ProductID}}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "quantity", Value: item.Quantity}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "_id", Value: newID()}, {Key: "addedAt", Value: item.AddedAt}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.CartItem
	if err := r.col().FindOneAndUpdate(ctx, filter, update, opts).Decode(&saved); err != nil {
		return nil, errors.Internal("Failed to add cart item", err)
	}
	return &saved, nil
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*entity.CartItem, error) {
	return findOne[entity.CartItem](ctx, r.col(), byID(id), "Cart item")
}

func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]*entity.CartItem, error) {
	return findAll[entity.CartItem](ctx, r.col(), bson.D{{Key: "email", Value: email}}, "cart items",
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}}))
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	return updateOne(ctx, r.col(), byID(id),
		bson.D{{Key: "$set", Value: bson.D{{Key: "quantity", Value: quantity}}}},
		"Cart item")
}

func (r *cartRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col(), byID(id), "Cart item")
}

func (r *cartRepository) ClearByEmail(ctx context.Context, email string) (int64, error) {
	return deleteMany(ctx, r.col(), bson.D{{Key: "email", Value: email}}, "cart items")
}

func (r *cartRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	return deleteMany(ctx, r.col(), bson.D{{Key: "productId", Value: productID}}, "cart items")
}
