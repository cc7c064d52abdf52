package analytics

import (
	"sort"
	"strings"

	"ubjewellers/internal/domain/entity"
)

const DefaultTopCategoryLimit = 6

// RollupCategories counts the products filed under each category, matching
// labels case-insensitively. Products whose label matches no category are
// ignored. Newest categories come first.
func RollupCategories(products []*entity.Product, categories []*entity.Category) []entity.CategoryCount {
	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[strings.ToLower(strings.TrimSpace(p.Category))]++
	}

	out := make([]entity.CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, entity.CategoryCount{
			CategoryID:   c.ID,
			CategoryName: c.CategoryName,
			CategoryPic:  c.CategoryPic,
			CreatedAt:    c.CreatedAt,
			ItemCount:    counts[strings.ToLower(strings.TrimSpace(c.CategoryName))],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// TopSellingCategories sums sold units per exact category label and returns
// the best sellers. A non-positive limit falls back to the default.
func TopSellingCategories(products []*entity.Product, limit int) []entity.TopCategory {
	if limit <= 0 {
		limit = DefaultTopCategoryLimit
	}

	totals := make(map[string]int)
	for _, p := range products {
		totals[p.Category] += p.Sold
	}

	out := make([]entity.TopCategory, 0, len(totals))
	for label, sold := range totals {
		out = append(out, entity.TopCategory{Category: label, TotalSold: sold})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalSold != out[j].TotalSold {
			return out[i].TotalSold > out[j].TotalSold
		}
		return out[i].Category < out[j].Category
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
