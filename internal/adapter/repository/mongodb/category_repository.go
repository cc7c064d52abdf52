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

type categoryRepository struct {
	db *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) col() *mongo.Collection {
	return r.db.Collection(categoriesCollection)
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = newID()
	}
	if _, err := r.col().InsertOne(ctx, category); err != nil {
		return errors.Internal("Failed to create category", err)
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return findOne[entity.Category](ctx, r.col(), byID(id), "Category")
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	return findAll[entity.Category](ctx, r.col(), bson.D{}, "categories",
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return updateOne(ctx, r.col(), byID(category.ID), bson.D{{Key: "$set", Value: bson.D{
		{Key: "categoryName", Value: category.CategoryName},
		{Key: "categoryPic", Value: category.CategoryPic},
	}}}, "Category")
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col(), byID(id), "Category")
}
