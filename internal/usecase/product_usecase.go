package usecase

import (
	"context"
	"strings"
	"time"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	cartRepo repository.CartRepository,
	wishlistRepo repository.WishlistRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
	}
}

type ProductInput struct {
	Name        string        `json:"name" validate:"required"`
	Category    string        `json:"category" validate:"required"`
	Price       entity.Amount `json:"price"`
	Size        string        `json:"size"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
	Stock       int           `json:"stock"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.Validation("name is required", nil)
	}
	if strings.TrimSpace(in.Category) == "" {
		return errors.Validation("category is required", nil)
	}
	if in.Price < 0 {
		return errors.Validation("price cannot be negative", nil)
	}
	if in.Stock < 0 {
		return errors.Validation("stock cannot be negative", nil)
	}
	return nil
}

// Search lists products whose name or category contains text. A search
// parameter that was sent empty matches nothing; an absent one matches all.
func (uc *ProductUseCase) Search(ctx context.Context, text string, present bool) ([]*entity.Product, error) {
	if present && strings.TrimSpace(text) == "" {
		return []*entity.Product{}, nil
	}
	return uc.productRepo.List(ctx, entity.ProductFilter{SearchText: strings.TrimSpace(text)})
}

// ByCategory lists products whose category contains the label; "all" lists
// everything.
func (uc *ProductUseCase) ByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, "all") {
		category = ""
	}
	return uc.productRepo.List(ctx, entity.ProductFilter{Category: category})
}

func (uc *ProductUseCase) Filter(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	if !entity.ValidProductSort(filter.Sort) {
		return nil, errors.Validation("unknown sort "+filter.Sort, nil)
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return nil, errors.Validation("minPrice cannot exceed maxPrice", nil)
	}
	return uc.productRepo.List(ctx, filter)
}

func (uc *ProductUseCase) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx, entity.ProductFilter{SellerEmail: sellerEmail, Sort: entity.SortNewest})
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, actor Actor, input ProductInput) (*entity.Product, error) {
	if !actor.IsSeller && !actor.IsAdmin {
		return nil, errors.Forbidden("Only sellers can list products", nil)
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		Size:        input.Size,
		Description: input.Description,
		Images:      nonNil(input.Images),
		SellerEmail: actor.Email,
		Stock:       input.Stock,
		Reviews:     []entity.Review{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, actor Actor, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(product.SellerEmail) {
		return nil, errors.Forbidden("You don't have permission to update this product", nil)
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Category = strings.TrimSpace(input.Category)
	product.Price = input.Price
	product.Size = input.Size
	product.Description = input.Description
	if input.Images != nil {
		product.Images = input.Images
	}
	product.Stock = input.Stock
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the listing, then best-effort removes its reviews,
// cart lines and wishlist entries.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string, actor Actor) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(product.SellerEmail) {
		return errors.Forbidden("You don't have permission to delete this product", nil)
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	log := logger.Ctx(ctx)
	if _, err := uc.reviewRepo.DeleteByProduct(ctx, id); err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("failed to delete reviews of removed product")
	}
	if _, err := uc.cartRepo.DeleteByProduct(ctx, id); err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("failed to delete cart items of removed product")
	}
	if _, err := uc.wishlistRepo.DeleteByProduct(ctx, id); err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("failed to delete wishlist items of removed product")
	}

	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
