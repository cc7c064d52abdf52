package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/errors"
)

type orderRepository struct {
	db *mongo.Database
}

func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) col() *mongo.Collection {
	return r.db.Collection(ordersCollection)
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = newID()
	}
	if _, err := r.col().InsertOne(ctx, order); err != nil {
		return errors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return findOne[entity.Order](ctx, r.col(), byID(id), "Order")
}

func (r *orderRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Order, error) {
	return findAll[entity.Order](ctx, r.col(), bson.D{{Key: "email", Value: email}}, "orders",
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return findAll[entity.Order](ctx, r.col(), bson.D{}, "orders",
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return updateOne(ctx, r.col(), byID(id),
		bson.D{{Key: "$set", Value: bson.D{{Key: "orderStatus", Value: status}}}},
		"Order")
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	return deleteOne(ctx, r.col(), byID(id), "Order")
}

func dateRange(from, to time.Time) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{{Key: "date", Value: bson.D{
		{Key: "$gte", Value: from},
		{Key: "$lt", Value: to},
	}}}}}
}

type summaryRow struct {
	TotalSells        float64 `bson:"totalSells"`
	TotalOrders       int     `bson:"totalOrders"`
	AverageOrderValue float64 `bson:"averageOrderValue"`
}

func (r *orderRepository) Summarize(ctx context.Context, from, to time.Time) (entity.SalesSummary, error) {
	pipeline := mongo.Pipeline{
		dateRange(from, to),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSells", Value: bson.D{{Key: "$sum", Value: asDouble("$total")}}},
			{Key: "totalOrders", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "averageOrderValue", Value: bson.D{{Key: "$avg", Value: asDouble("$total")}}},
		}}},
	}

	cursor, err := r.col().Aggregate(ctx, pipeline)
	if err != nil {
		return entity.SalesSummary{}, errors.Internal("Failed to aggregate orders", err)
	}

	var rows []summaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return entity.SalesSummary{}, errors.Internal("Failed to decode order summary", err)
	}
	if len(rows) == 0 {
		return entity.SalesSummary{}, nil
	}

	return entity.SalesSummary{
		TotalSells:        rows[0].TotalSells,
		TotalOrders:       rows[0].TotalOrders,
		AverageOrderValue: rows[0].AverageOrderValue,
	}, nil
}

func (r *orderRepository) MonthlyTotals(ctx context.Context, from, to time.Time, loc *time.Location) ([]entity.MonthlySalesRecord, error) {
	tz := timezoneName(loc, from)

	pipeline := mongo.Pipeline{
		dateRange(from, to),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$month", Value: bson.D{{Key: "date", Value: "$date"}, {Key: "timezone", Value: tz}}}}},
			{Key: "totalSales", Value: bson.D{{Key: "$sum", Value: asDouble("$total")}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.col().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Internal("Failed to aggregate monthly sales", err)
	}

	records := []entity.MonthlySalesRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Internal("Failed to decode monthly sales", err)
	}
	return records, nil
}

// timezoneName renders loc for Mongo's date operators, which accept IANA
// names and "+hh:mm" offsets. Go's "Local" and fixed-zone abbreviations are
// neither, so those become the offset in effect at the given instant.
func timezoneName(loc *time.Location, at time.Time) string {
	if loc == nil {
		return "UTC"
	}
	if name := loc.String(); name != "Local" && name != "" {
		if _, err := time.LoadLocation(name); err == nil {
			return name
		}
	}

	_, offset := at.In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s%02d:%02d", sign, offset/3600, offset%3600/60)
}
