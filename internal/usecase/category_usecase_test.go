package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/pkg/errors"
)

func TestCategoryRenameCascadesToProducts(t *testing.T) {
	ctx := context.Background()
	products := newMemProducts(
		&entity.Product{ID: "1", Category: "Rings"},
		&entity.Product{ID: "2", Category: "Rings"},
		&entity.Product{ID: "3", Category: "Necklaces"},
	)
	categories := newMemCategories(&entity.Category{ID: "c1", CategoryName: "Rings", CreatedAt: time.Now()})
	uc := NewCategoryUseCase(categories, products)

	updated, err := uc.UpdateCategory(ctx, "c1", CategoryInput{CategoryName: "Wedding Rings"})
	require.NoError(t, err)
	assert.Equal(t, "Wedding Rings", updated.CategoryName)

	rings, err := products.List(ctx, entity.ProductFilter{Category: "Wedding Rings"})
	require.NoError(t, err)
	assert.Len(t, rings, 2)
}

func TestCreateCategoryRejectsDuplicates(t *testing.T) {
	categories := newMemCategories(&entity.Category{ID: "c1", CategoryName: "Rings"})
	uc := NewCategoryUseCase(categories, newMemProducts())

	_, err := uc.CreateCategory(context.Background(), CategoryInput{CategoryName: "rings"})
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = uc.CreateCategory(context.Background(), CategoryInput{CategoryName: "  "})
	assert.True(t, errors.Is(err, errors.CodeValidation))

	c, err := uc.CreateCategory(context.Background(), CategoryInput{CategoryName: "Brooches", CategoryPic: "https://img/b.png"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestListWithCounts(t *testing.T) {
	products := newMemProducts(
		&entity.Product{ID: "1", Category: "Rings"},
		&entity.Product{ID: "2", Category: "rings"},
	)
	categories := newMemCategories(&entity.Category{ID: "c1", CategoryName: "RINGS"})
	uc := NewCategoryUseCase(categories, products)

	out, err := uc.ListWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ItemCount)
}

func TestDeleteMissingCategory(t *testing.T) {
	uc := NewCategoryUseCase(newMemCategories(), newMemProducts())
	assert.True(t, errors.IsNotFound(uc.DeleteCategory(context.Background(), "nope")))
}
