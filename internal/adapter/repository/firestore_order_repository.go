package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) col() *firestore.CollectionRef {
	return r.client.Collection(ordersCollection)
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = r.col().NewDoc().ID
	}

	if _, err := r.col().Doc(order.ID).Set(ctx, order); err != nil {
		return errors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return getDoc[entity.Order](ctx, r.col().Doc(id), "Order")
}

func (r *firestoreOrderRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return decodeAll[entity.Order](r.col().Where("email", "==", email).Documents(ctx), "orders")
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return decodeAll[entity.Order](r.col().OrderBy("date", firestore.Desc).Documents(ctx), "orders")
}

func (r *firestoreOrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: "orderStatus", Value: status},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to update order status", err)
	}
	return nil
}

func (r *firestoreOrderRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Order", err)
		}
		return errors.Internal("Failed to delete order", err)
	}
	return nil
}

func (r *firestoreOrderRepository) window(from, to time.Time) firestore.Query {
	return r.col().Where("date", ">=", from).Where("date", "<", to)
}

// Summarize runs a server-side count and sum over the window.
func (r *firestoreOrderRepository) Summarize(ctx context.Context, from, to time.Time) (entity.SalesSummary, error) {
	q := r.window(from, to)
	result, err := q.NewAggregationQuery().
		WithCount("totalOrders").
		WithSum("total", "totalSells").
		Get(ctx)
	if err != nil {
		return entity.SalesSummary{}, errors.Internal("Failed to aggregate orders", err)
	}

	summary := entity.SalesSummary{
		TotalSells:  aggregateNumber(result, "totalSells"),
		TotalOrders: int(aggregateNumber(result, "totalOrders")),
	}
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = summary.TotalSells / float64(summary.TotalOrders)
	}
	return summary, nil
}

// MonthlyTotals buckets order totals by month in loc. Firestore has no
// group-by, so only the two needed fields are fetched and summed here.
func (r *firestoreOrderRepository) MonthlyTotals(ctx context.Context, from, to time.Time, loc *time.Location) ([]entity.MonthlySalesRecord, error) {
	orders, err := decodeAll[entity.Order](r.window(from, to).Select("date", "total").Documents(ctx), "orders")
	if err != nil {
		return nil, err
	}
	return bucketByMonth(orders, loc), nil
}

func bucketByMonth(orders []*entity.Order, loc *time.Location) []entity.MonthlySalesRecord {
	if loc == nil {
		loc = time.UTC
	}

	var totals [12]float64
	var seen [12]bool
	for _, o := range orders {
		m := int(o.Date.In(loc).Month()) - 1
		totals[m] += o.Total.Float64()
		seen[m] = true
	}

	records := []entity.MonthlySalesRecord{}
	for i := range totals {
		if seen[i] {
			records = append(records, entity.MonthlySalesRecord{Month: i + 1, TotalSales: totals[i]})
		}
	}
	return records
}
