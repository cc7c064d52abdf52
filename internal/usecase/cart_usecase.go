package usecase

import (
	"context"
	"time"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddCartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func (uc *CartUseCase) AddItem(ctx context.Context, email string, input AddCartItemInput) (*entity.CartItem, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		return nil, errors.Validation("quantity must be positive", nil)
	}
	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	return uc.cartRepo.Add(ctx, &entity.CartItem{
		Email:     email,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		AddedAt:   time.Now(),
	})
}

func (uc *CartUseCase) ListItems(ctx context.Context, email string) ([]*entity.CartItem, error) {
	return uc.cartRepo.ListByEmail(ctx, email)
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, email, id string, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.Validation("quantity must be positive", nil)
	}
	item, err := uc.owned(ctx, email, id)
	if err != nil {
		return nil, err
	}

	if err := uc.cartRepo.UpdateQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, email, id string) error {
	if _, err := uc.owned(ctx, email, id); err != nil {
		return err
	}
	return uc.cartRepo.Delete(ctx, id)
}

func (uc *CartUseCase) Clear(ctx context.Context, email string) (int64, error) {
	return uc.cartRepo.ClearByEmail(ctx, email)
}

func (uc *CartUseCase) owned(ctx context.Context, email, id string) (*entity.CartItem, error) {
	item, err := uc.cartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Email != email {
		return nil, errors.Forbidden("This cart item belongs to another user", nil)
	}
	return item, nil
}
