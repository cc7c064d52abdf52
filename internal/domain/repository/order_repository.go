package repository

import (
	"context"
	"time"

	"ubjewellers/internal/domain/entity"
)

type OrderRepository interface {
	// Create stores the order. An order that already carries an ID keeps it,
	// which is how a deleted order is restored.
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error

	// Summarize aggregates orders dated in [from, to). No matching orders
	// yields a zero summary.
	Summarize(ctx context.Context, from, to time.Time) (entity.SalesSummary, error)

	// MonthlyTotals groups order totals in [from, to) by calendar month in loc.
	MonthlyTotals(ctx context.Context, from, to time.Time, loc *time.Location) ([]entity.MonthlySalesRecord, error)
}
