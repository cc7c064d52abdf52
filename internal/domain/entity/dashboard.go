package entity

import (
	"time"
)

const (
	DirectionUp       = "up"
	DirectionDown     = "down"
	DirectionNoChange = "no-change"
)

type PercentageChange struct {
	Direction       string  `json:"direction"`
	PercentageValue float64 `json:"percentageValue"`
}

// SalesSummary aggregates the orders of one time window. An empty window
// is all zeros.
type SalesSummary struct {
	TotalSells        float64 `json:"totalSells"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

type MonthSummary struct {
	SalesSummary
	MonthName string `json:"monthName,omitempty"`
	Year      int    `json:"year,omitempty"`
}

type DashboardStats struct {
	CurrentMonthData     MonthSummary `json:"currentMonthData"`
	LastMonthData        MonthSummary `json:"lastMonthData"`
	CurrentMonthCustomer int64        `json:"currentMonthCustomer"`
	LastMonthCustomer    int64        `json:"lastMonthCustomer"`

	SalesChange        PercentageChange `json:"salesPercentageChange"`
	OrdersChange       PercentageChange `json:"ordersPercentageChange"`
	AverageOrderChange PercentageChange `json:"averageOrderValuePercentageChange"`
	NewCustomersChange PercentageChange `json:"customersPercentageChange"`
}

// MonthlySalesRecord is one sparse aggregate row keyed by 1-based month.
type MonthlySalesRecord struct {
	Month      int     `json:"_id" bson:"_id"`
	TotalSales float64 `json:"totalSales" bson:"totalSales"`
}

type MonthlySales struct {
	MonthName  string  `json:"monthName"`
	TotalSales float64 `json:"totalSales"`
}

type IncomeStat struct {
	MonthName   string `json:"monthName"`
	Year        int    `json:"year"`
	TotalSales  string `json:"totalSales"`
	TotalOrders int    `json:"totalOrders"`
}

type CategoryCount struct {
	CategoryID   string    `json:"_id"`
	CategoryName string    `json:"categoryName"`
	CategoryPic  string    `json:"categoryPic"`
	CreatedAt    time.Time `json:"createdAt"`
	ItemCount    int       `json:"itemCount"`
}

type TopCategory struct {
	Category  string `json:"category"`
	TotalSold int    `json:"totalSold"`
}

type ProductSales struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

type SellerStats struct {
	ProductCount int            `json:"productCount"`
	TotalStock   int            `json:"totalStock"`
	TotalSold    int            `json:"totalSold"`
	Revenue      string         `json:"revenue"`
	TopProducts  []ProductSales `json:"topProducts"`
}

// DashboardEvent is pushed to live admin dashboards when the order book changes.
type DashboardEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"orderId"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced  = "order_placed"
	EventOrderDeleted = "order_deleted"
)
