package repository

import (
	"context"

	"ubjewellers/internal/domain/entity"
)

type CartRepository interface {
	// Add inserts the item, or bumps the quantity of the owner's existing
	// line for the same product.
	Add(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	GetByID(ctx context.Context, id string) (*entity.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
	ClearByEmail(ctx context.Context, email string) (int64, error)
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
