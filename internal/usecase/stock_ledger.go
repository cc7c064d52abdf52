package usecase

import (
	"context"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/pkg/logger"
)

// StockLedger keeps product stock and sold counters in step with the order
// book. All line items of one order move in a single store transaction; the
// order write and the counter write are separate steps, and a failed second
// step is compensated by undoing the first.
type StockLedger struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewStockLedger(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *StockLedger {
	return &StockLedger{
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// ApplyOrder moves each line item's quantity from stock to sold. Stock is
// allowed to go negative. Every product must exist.
func (l *StockLedger) ApplyOrder(ctx context.Context, details []entity.OrderDetail) error {
	adjustments := mergeLineItems(details, 1)
	if len(adjustments) == 0 {
		return nil
	}
	_, err := l.productRepo.AdjustStock(ctx, adjustments)
	return err
}

// ReverseOrder moves each line item's quantity from sold back to stock.
// Products that no longer exist are skipped and returned.
func (l *StockLedger) ReverseOrder(ctx context.Context, details []entity.OrderDetail) ([]string, error) {
	adjustments := mergeLineItems(details, -1)
	if len(adjustments) == 0 {
		return nil, nil
	}
	return l.productRepo.AdjustStock(ctx, adjustments)
}

// Place stores the order and applies it to stock.
func (l *StockLedger) Place(ctx context.Context, order *entity.Order) error {
	if err := l.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	if err := l.ApplyOrder(ctx, order.OrderDetails); err != nil {
		if cerr := l.orderRepo.Delete(ctx, order.ID); cerr != nil {
			logger.LogLedgerInconsistency(ctx, order.ID, "remove order after failed stock apply", cerr)
		}
		return err
	}

	return nil
}

// Cancel deletes the order and returns its units to stock.
func (l *StockLedger) Cancel(ctx context.Context, order *entity.Order) error {
	if err := l.orderRepo.Delete(ctx, order.ID); err != nil {
		return err
	}

	skipped, err := l.ReverseOrder(ctx, order.OrderDetails)
	if err != nil {
		if cerr := l.orderRepo.Create(ctx, order); cerr != nil {
			logger.LogLedgerInconsistency(ctx, order.ID, "restore order after failed stock reversal", cerr)
		}
		return err
	}

	for _, productID := range skipped {
		logger.LogLedgerInconsistency(ctx, order.ID, "skip stock reversal for missing product "+productID, nil)
	}
	return nil
}

// mergeLineItems folds repeated products into one adjustment each, keeping
// first-seen order. sign is 1 for apply and -1 for reverse.
func mergeLineItems(details []entity.OrderDetail, sign int) []entity.StockAdjustment {
	index := make(map[string]int, len(details))
	adjustments := make([]entity.StockAdjustment, 0, len(details))

	for _, d := range details {
		if i, ok := index[d.ProductID]; ok {
			adjustments[i].Quantity += sign * d.Quantity
			continue
		}
		index[d.ProductID] = len(adjustments)
		adjustments = append(adjustments, entity.StockAdjustment{ProductID: d.ProductID, Quantity: sign * d.Quantity})
	}

	out := adjustments[:0]
	for _, a := range adjustments {
		if a.Quantity != 0 {
			out = append(out, a)
		}
	}
	return out
}
