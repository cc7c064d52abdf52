package repository

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/stretchr/testify/assert"

	"ubjewellers/internal/domain/entity"
)

func TestBucketByMonthUsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	orders := []*entity.Order{
		{Total: 100, Date: time.Date(2024, time.March, 2, 10, 0, 0, 0, time.UTC)},
		{Total: 50.5, Date: time.Date(2024, time.March, 20, 10, 0, 0, 0, time.UTC)},
		// 31 Jan 20:00 UTC is already February in UTC+7.
		{Total: 10, Date: time.Date(2024, time.January, 31, 20, 0, 0, 0, time.UTC)},
	}

	records := bucketByMonth(orders, jakarta)

	assert.Equal(t, []entity.MonthlySalesRecord{
		{Month: 2, TotalSales: 10},
		{Month: 3, TotalSales: 150.5},
	}, records)
}

func TestBucketByMonthEmpty(t *testing.T) {
	assert.Empty(t, bucketByMonth(nil, nil))
}

func TestAggregateNumber(t *testing.T) {
	result := firestore.AggregationResult{
		"count": &firestorepb.Value{ValueType: &firestorepb.Value_IntegerValue{IntegerValue: 4}},
		"sum":   &firestorepb.Value{ValueType: &firestorepb.Value_DoubleValue{DoubleValue: 99.5}},
		"plain": int64(3),
	}

	assert.Equal(t, 4.0, aggregateNumber(result, "count"))
	assert.Equal(t, 99.5, aggregateNumber(result, "sum"))
	assert.Equal(t, 3.0, aggregateNumber(result, "plain"))
	assert.Equal(t, 0.0, aggregateNumber(result, "missing"))
}
