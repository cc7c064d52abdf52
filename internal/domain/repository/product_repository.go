package repository

import (
	"context"

	"ubjewellers/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error

	// AdjustStock applies every adjustment in one store transaction: sold
	// grows by Quantity and stock shrinks by it. A positive adjustment on an
	// unknown product aborts the whole batch with a not-found error. A
	// negative one (a reversal) is skipped instead and its product ID is
	// returned, so orders for deleted products can still be removed.
	AdjustStock(ctx context.Context, adjustments []entity.StockAdjustment) (skipped []string, err error)

	// RenameCategory relabels every product filed under oldName.
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)

	// Embedded review copies
	AddReview(ctx context.Context, productID string, review entity.Review) error
	SetReviewLikes(ctx context.Context, productID string, review entity.Review) error
}
