package repository

import (
	"context"

	"ubjewellers/internal/domain/entity"
)

type WishlistRepository interface {
	// Add is idempotent: a product already on the list returns the stored item.
	Add(ctx context.Context, email, productID string) (*entity.WishlistItem, error)
	ListByEmail(ctx context.Context, email string) ([]*entity.WishlistItem, error)
	Remove(ctx context.Context, email, productID string) error
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}
