package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{client: client}
}

func (r *firestoreCategoryRepository) col() *firestore.CollectionRef {
	return r.client.Collection(categoriesCollection)
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = r.col().NewDoc().ID
	}
	if _, err := r.col().Doc(category.ID).Set(ctx, category); err != nil {
		return errors.Internal("Failed to create category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return getDoc[entity.Category](ctx, r.col().Doc(id), "Category")
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	return decodeAll[entity.Category](r.col().OrderBy("createdAt", firestore.Desc).Documents(ctx), "categories")
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	_, err := r.col().Doc(category.ID).Update(ctx, []firestore.Update{
		{Path: "categoryName", Value: category.CategoryName},
		{Path: "categoryPic", Value: category.CategoryPic},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Category", err)
		}
		return errors.Internal("Failed to update category", err)
	}
	return nil
}

func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete category", err)
	}
	return nil
}
