package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
)

func TestRollupCategoriesCaseInsensitive(t *testing.T) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	categories := []*entity.Category{
		{ID: "c1", CategoryName: "rings", CreatedAt: base},
		{ID: "c2", CategoryName: "Necklaces", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "c3", CategoryName: "Paintings", CreatedAt: base.Add(24 * time.Hour)},
	}
	products := []*entity.Product{
		{Category: "Rings"},
		{Category: "RINGS"},
		{Category: "necklaces"},
		{Category: "Bracelets"},
	}

	out := RollupCategories(products, categories)

	require.Len(t, out, 3)
	assert.Equal(t, "c2", out[0].CategoryID)
	assert.Equal(t, 1, out[0].ItemCount)
	assert.Equal(t, "c3", out[1].CategoryID)
	assert.Equal(t, 0, out[1].ItemCount)
	assert.Equal(t, "c1", out[2].CategoryID)
	assert.Equal(t, 2, out[2].ItemCount)
}

func TestTopSellingCategories(t *testing.T) {
	products := []*entity.Product{
		{Category: "Rings", Sold: 4},
		{Category: "Rings", Sold: 6},
		{Category: "rings", Sold: 1},
		{Category: "Earrings", Sold: 10},
		{Category: "Paintings", Sold: 3},
	}

	out := TopSellingCategories(products, 2)
	assert.Equal(t, []entity.TopCategory{
		{Category: "Earrings", TotalSold: 10},
		{Category: "Rings", TotalSold: 10},
	}, out)

	all := TopSellingCategories(products, 0)
	assert.Len(t, all, 4)
	assert.Equal(t, entity.TopCategory{Category: "rings", TotalSold: 1}, all[3])
}
