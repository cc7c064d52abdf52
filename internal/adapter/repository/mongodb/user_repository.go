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

type userRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) col() *mongo.Collection {
	return r.db.Collection(usersCollection)
}

// Upsert relies on $setOnInsert so createdAt and the capability flags are
// only written when the document is created.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) (*entity.User, error) {
	now := time.Now()
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: user.Name},
			{Key: "photoURL", Value: user.PhotoURL},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "createdAt", Value: now},
			{Key: "isAdmin", Value: false},
			{Key: "isSeller", Value: false},
		}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved entity.User
	if err := r.col().FindOneAndUpdate(ctx, byID(user.Email), update, opts).Decode(&saved); err != nil {
		return nil, errors.Internal("Failed to save user", err)
	}
	return &saved, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.col(), byID(email), "User")
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return findAll[entity.User](ctx, r.col(), bson.D{}, "users",
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *userRepository) SetShippingAddress(ctx context.Context, email string, address *entity.Address) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{{Key: "shippingAddress", Value: address}, {Key: "updatedAt", Value: time.Now()}}},
	}
	if address == nil {
		update = bson.D{
			{Key: "$unset", Value: bson.D{{Key: "shippingAddress", Value: ""}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
		}
	}
	return updateOne(ctx, r.col(), byID(email), update, "User")
}

func (r *userRepository) UpdateRoles(ctx context.Context, email string, roles entity.RoleUpdate) error {
	set := bson.D{{Key: "updatedAt", Value: time.Now()}}
	if roles.IsAdmin != nil {
		set = append(set, bson.E{Key: "isAdmin", Value: *roles.IsAdmin})
	}
	if roles.IsSeller != nil {
		set = append(set, bson.E{Key: "isSeller", Value: *roles.IsSeller})
	}
	return updateOne(ctx, r.col(), byID(email), bson.D{{Key: "$set", Value: set}}, "User")
}

func (r *userRepository) Delete(ctx context.Context, email string) error {
	return deleteOne(ctx, r.col(), byID(email), "User")
}

func (r *userRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	n, err := r.col().CountDocuments(ctx, bson.D{{Key: "createdAt", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}})
	if err != nil {
		return 0, errors.Internal("Failed to count users", err)
	}
	return n, nil
}
