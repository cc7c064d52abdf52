package usecase

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/pkg/errors"
)

func TestMergeLineItems(t *testing.T) {
	details := []entity.OrderDetail{
		{ProductID: "a", Quantity: 2},
		{ProductID: "b", Quantity: 1},
		{ProductID: "a", Quantity: 3},
	}

	assert.Equal(t, []entity.StockAdjustment{{ProductID: "a", Quantity: 5}, {ProductID: "b", Quantity: 1}}, mergeLineItems(details, 1))
	assert.Equal(t, []entity.StockAdjustment{{ProductID: "a", Quantity: -5}, {ProductID: "b", Quantity: -1}}, mergeLineItems(details, -1))
	assert.Empty(t, mergeLineItems(nil, 1))
}

func TestStockLedgerApplyThenReverseRestoresCounters(t *testing.T) {
	ctx := context.Background()
	products := newMemProducts(&entity.Product{ID: "P", Stock: 10, Sold: 5})
	ledger := NewStockLedger(products, newMemOrders())

	details := []entity.OrderDetail{{ProductID: "P", Quantity: 3}}

	require.NoError(t, ledger.ApplyOrder(ctx, details))
	stock, sold := products.stock("P")
	assert.Equal(t, 7, stock)
	assert.Equal(t, 8, sold)

	skipped, err := ledger.ReverseOrder(ctx, details)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	stock, sold = products.stock("P")
	assert.Equal(t, 10, stock)
	assert.Equal(t, 5, sold)
}

func TestStockLedgerToleratesNegativeStock(t *testing.T) {
	products := newMemProducts(&entity.Product{ID: "P", Stock: 1})
	ledger := NewStockLedger(products, newMemOrders())

	require.NoError(t, ledger.ApplyOrder(context.Background(), []entity.OrderDetail{{ProductID: "P", Quantity: 4}}))

	stock, sold := products.stock("P")
	assert.Equal(t, -3, stock)
	assert.Equal(t, 4, sold)
}

func TestStockLedgerPlaceRemovesOrderWhenStockFails(t *testing.T) {
	products := newMemProducts(&entity.Product{ID: "P", Stock: 10})
	products.adjustErr = stderrors.New("store unavailable")
	orders := newMemOrders()
	ledger := NewStockLedger(products, orders)

	order := &entity.Order{Email: "ann@example.com", OrderDetails: []entity.OrderDetail{{ProductID: "P", Quantity: 1}}}
	err := ledger.Place(context.Background(), order)

	require.Error(t, err)
	assert.Empty(t, orders.items)
}

func TestStockLedgerCancelRestoresOrderWhenStockFails(t *testing.T) {
	products := newMemProducts(&entity.Product{ID: "P", Stock: 8, Sold: 7})
	orders := newMemOrders()
	ledger := NewStockLedger(products, orders)

	order := &entity.Order{Email: "ann@example.com", OrderDetails: []entity.OrderDetail{{ProductID: "P", Quantity: 2}}}
	require.NoError(t, orders.Create(context.Background(), order))

	products.adjustErr = stderrors.New("store unavailable")
	err := ledger.Cancel(context.Background(), order)

	require.Error(t, err)
	restored, getErr := orders.GetByID(context.Background(), order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, order.OrderDetails, restored.OrderDetails)
}

func TestStockLedgerReverseSkipsMissingProducts(t *testing.T) {
	products := newMemProducts(&entity.Product{ID: "P", Stock: 8, Sold: 7})
	ledger := NewStockLedger(products, newMemOrders())

	skipped, err := ledger.ReverseOrder(context.Background(), []entity.OrderDetail{
		{ProductID: "gone", Quantity: 1},
		{ProductID: "P", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"gone"}, skipped)

	stock, sold := products.stock("P")
	assert.Equal(t, 10, stock)
	assert.Equal(t, 5, sold)
}

func TestStockLedgerApplyRejectsMissingProducts(t *testing.T) {
	products := newMemProducts(&entity.Product{ID: "P", Stock: 8})
	ledger := NewStockLedger(products, newMemOrders())

	err := ledger.ApplyOrder(context.Background(), []entity.OrderDetail{
		{ProductID: "P", Quantity: 1},
		{ProductID: "gone", Quantity: 1},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	stock, _ := products.stock("P")
	assert.Equal(t, 8, stock)
}
