package mongodb

import (
	"context"
	stderrors "errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ubjewellers/pkg/errors"
)

const (
	productsCollection   = "products"
	ordersCollection     = "orders"
	usersCollection      = "users"
	categoriesCollection = "categories"
	cartsCollection      = "carts"
	wishlistsCollection  = "wishlists"
	reviewsCollection    = "reviews"
)

// newID returns a fresh ObjectID in hex; documents keep string ids so they
// share one shape with the Firestore store.
func newID() string {
	return primitive.NewObjectID().Hex()
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// equalFold matches a string field case-insensitively and exactly.
func equalFold(value string) bson.D {
	return bson.D{{Key: "$regex", Value: "^" + regexp.QuoteMeta(value) + "$"}, {Key: "$options", Value: "i"}}
}

func contains(value string) bson.D {
	return bson.D{{Key: "$regex", Value: regexp.QuoteMeta(value)}, {Key: "$options", Value: "i"}}
}

// asDouble coerces a field that legacy documents may hold as a string.
func asDouble(field string) bson.D {
	return bson.D{{Key: "$convert", Value: bson.D{
		{Key: "input", Value: field},
		{Key: "to", Value: "double"},
		{Key: "onError", Value: 0},
		{Key: "onNull", Value: 0},
	}}}
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter interface{}, what string, opts ...*options.FindOptions) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Internal("Failed to query "+what, err)
	}

	out := []*T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, errors.Internal("Failed to decode "+what, err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, col *mongo.Collection, filter interface{}, what string) (*T, error) {
	var v T
	err := col.FindOne(ctx, filter).Decode(&v)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.NotFound(what, err)
		}
		return nil, errors.Internal("Failed to get "+what, err)
	}
	return &v, nil
}

func deleteOne(ctx context.Context, col *mongo.Collection, filter interface{}, what string) error {
	res, err := col.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Internal("Failed to delete "+what, err)
	}
	if res.DeletedCount == 0 {
		return errors.NotFound(what, nil)
	}
	return nil
}

func deleteMany(ctx context.Context, col *mongo.Collection, filter interface{}, what string) (int64, error) {
	res, err := col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, errors.Internal("Failed to delete "+what, err)
	}
	return res.DeletedCount, nil
}

func updateOne(ctx context.Context, col *mongo.Collection, filter, update interface{}, what string) error {
	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return errors.Internal("Failed to update "+what, err)
	}
	if res.MatchedCount == 0 {
		return errors.NotFound(what, nil)
	}
	return nil
}

// withTransaction runs fn in a session transaction. Multi-document
// transactions need a replica set or sharded cluster.
func withTransaction(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) error) error {
	session, err := client.StartSession()
	if err != nil {
		return errors.Internal("Failed to start session", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return appErr
		}
		return errors.Internal("Transaction failed", err)
	}
	return nil
}
