package entity

import (
	"sort"
	"strings"
	"time"
)

type Product struct {
	ID          string    `json:"_id" firestore:"id" bson:"_id"`
	Name        string    `json:"name" firestore:"name" bson:"name"`
	Category    string    `json:"category" firestore:"category" bson:"category"`
	Price       Amount    `json:"price" firestore:"price" bson:"price"`
	Size        string    `json:"size,omitempty" firestore:"size,omitempty" bson:"size,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty" bson:"description,omitempty"`
	Images      []string  `json:"images" firestore:"images" bson:"images"`
	SellerEmail string    `json:"sellerEmail,omitempty" firestore:"sellerEmail,omitempty" bson:"sellerEmail,omitempty"`
	Stock       int       `json:"stock" firestore:"stock" bson:"stock"`
	Sold        int       `json:"sold" firestore:"sold" bson:"sold"`
	Reviews     []Review  `json:"reviews" firestore:"reviews" bson:"reviews"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt" bson:"updatedAt"`
}

// ReviewByID returns the embedded copy of a review, if the product carries one.
func (p *Product) ReviewByID(id string) (int, bool) {
	for i := range p.Reviews {
		if p.Reviews[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortNewest      = "newest"
	SortBestSelling = "best_selling"
)

// ProductFilter narrows a product listing. Text matches are case-insensitive
// substring matches, mirroring the storefront's regex search.
type ProductFilter struct {
	SearchText  string
	Category    string
	SellerEmail string
	MinPrice    *float64
	MaxPrice    *float64
	Sort        string
}

func (f ProductFilter) Matches(p *Product) bool {
	if f.SearchText != "" {
		q := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Category), q) {
			return false
		}
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.SellerEmail != "" && !strings.EqualFold(p.SellerEmail, f.SellerEmail) {
		return false
	}
	if f.MinPrice != nil && p.Price.Float64() < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price.Float64() > *f.MaxPrice {
		return false
	}
	return true
}

func ValidProductSort(s string) bool {
	switch s {
	case "", SortPriceAsc, SortPriceDesc, SortNewest, SortBestSelling:
		return true
	}
	return false
}

// SortProducts orders products in place. An empty key keeps store order.
func SortProducts(products []*Product, key string) {
	var less func(a, b *Product) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b *Product) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b *Product) bool { return a.Price > b.Price }
	case SortNewest:
		less = func(a, b *Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortBestSelling:
		less = func(a, b *Product) bool { return a.Sold > b.Sold }
	default:
		return
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}

// StockAdjustment is one product's counter change. A positive Quantity moves
// units from stock to sold; a negative one moves them back.
type StockAdjustment struct {
	ProductID string
	Quantity  int
}
