package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. The unique
// (email, productId) pairs make cart and wishlist upserts race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		ordersCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
		productsCollection: {
			{Keys: bson.D{{Key: "sellerEmail", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		cartsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "productId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		wishlistsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "productId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		reviewsCollection: {
			{Keys: bson.D{{Key: "productId", Value: 1}}},
		},
	}

	for name, models := range specs {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
