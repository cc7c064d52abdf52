package usecase

import (
	"context"
	"strings"
	"time"

	"ubjewellers/internal/domain/analytics"
	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

type CategoryInput struct {
	CategoryName string `json:"categoryName" validate:"required"`
	CategoryPic  string `json:"categoryPic"`
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// ListWithCounts joins product counts onto categories for the admin view.
func (uc *CategoryUseCase) ListWithCounts(ctx context.Context) ([]entity.CategoryCount, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, entity.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return analytics.RollupCategories(products, categories), nil
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, errors.Validation("categoryName is required", nil)
	}
	if err := uc.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}

	category := &entity.Category{
		CategoryName: name,
		CategoryPic:  input.CategoryPic,
		CreatedAt:    time.Now(),
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory saves the category and, on rename, relabels its products.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return nil, errors.Validation("categoryName is required", nil)
	}
	oldName := category.CategoryName
	renamed := name != oldName
	if renamed {
		if err := uc.ensureUniqueName(ctx, name, id); err != nil {
			return nil, err
		}
	}

	category.CategoryName = name
	if input.CategoryPic != "" {
		category.CategoryPic = input.CategoryPic
	}
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	if renamed {
		n, err := uc.productRepo.RenameCategory(ctx, oldName, name)
		if err != nil {
			return nil, errors.Internal("Category renamed but products were not relabelled", err)
		}
		logger.Ctx(ctx).Info().Str("from", oldName).Str("to", name).Int64("products", n).Msg("category renamed")
	}

	return category, nil
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *CategoryUseCase) ensureUniqueName(ctx context.Context, name, exceptID string) error {
	existing, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.ID != exceptID && strings.EqualFold(c.CategoryName, name) {
			return errors.Conflict("Category " + name + " already exists")
		}
	}
	return nil
}
