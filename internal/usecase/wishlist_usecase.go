package usecase

import (
	"context"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (uc *WishlistUseCase) AddToWishlist(ctx context.Context, email, productID string) (*entity.WishlistItem, error) {
	if productID == "" {
		return nil, errors.Validation("productId is required", nil)
	}
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return uc.wishlistRepo.Add(ctx, email, productID)
}

// GetWishlist returns the list with product details. Entries whose product
// has since disappeared are returned without one.
func (uc *WishlistUseCase) GetWishlist(ctx context.Context, email string) ([]entity.WishlistItemWithProduct, error) {
	items, err := uc.wishlistRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	out := make([]entity.WishlistItemWithProduct, 0, len(items))
	for _, item := range items {
		entry := entity.WishlistItemWithProduct{WishlistItem: *item}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		switch {
		case err == nil:
			entry.Product = product
		case errors.IsNotFound(err):
		default:
			logger.Ctx(ctx).Warn().Err(err).Str("product_id", item.ProductID).Msg("wishlist product lookup failed")
		}
		out = append(out, entry)
	}
	return out, nil
}

func (uc *WishlistUseCase) RemoveFromWishlist(ctx context.Context, email, productID string) error {
	return uc.wishlistRepo.Remove(ctx, email, productID)
}
