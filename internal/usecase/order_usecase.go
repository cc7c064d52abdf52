package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/repository"
	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
	"ubjewellers/pkg/logger"
)

type OrderUseCase struct {
	ledger      *StockLedger
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	cartRepo    repository.CartRepository
	notifier    service.DashboardNotifier
	now         func() time.Time
}

func NewOrderUseCase(
	ledger *StockLedger,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	notifier service.DashboardNotifier,
) *OrderUseCase {
	return &OrderUseCase{
		ledger:      ledger,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		cartRepo:    cartRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

type PlaceOrderInput struct {
	OrderDetails    []entity.OrderDetail `json:"orderDetails" validate:"required,min=1"`
	Total           entity.Amount        `json:"total"`
	ShippingAddress *entity.Address      `json:"shippingAddress"`
	PaymentID       string               `json:"paymentId"`
	TransactionID   string               `json:"transactionId"`
}

func (uc *OrderUseCase) PlaceOrder(ctx context.Context, email string, input PlaceOrderInput) (*entity.Order, error) {
	if len(input.OrderDetails) == 0 {
		return nil, errors.Validation("Order must contain at least one item", nil)
	}
	if input.Total < 0 {
		return nil, errors.Validation("Order total cannot be negative", nil)
	}

	// Every referenced product must exist before anything is written.
	products := make(map[string]*entity.Product, len(input.OrderDetails))
	for _, d := range input.OrderDetails {
		if strings.TrimSpace(d.ProductID) == "" {
			return nil, errors.Validation("Line item is missing productId", nil)
		}
		if d.Quantity <= 0 {
			return nil, errors.Validation("Line item quantity must be positive", nil)
		}
		if _, seen := products[d.ProductID]; seen {
			continue
		}
		product, err := uc.productRepo.GetByID(ctx, d.ProductID)
		if err != nil {
			return nil, err
		}
		products[d.ProductID] = product
	}

	total := input.Total
	if total == 0 {
		total = orderValue(input.OrderDetails, products)
	}

	shipping := input.ShippingAddress
	if shipping == nil {
		if user, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
			shipping = user.ShippingAddress
		}
	}

	order := &entity.Order{
		Email:           email,
		OrderDetails:    input.OrderDetails,
		Total:           total,
		Date:            uc.now(),
		OrderStatus:     entity.OrderStatusPending,
		ShippingAddress: shipping,
		PaymentID:       input.PaymentID,
		TransactionID:   input.TransactionID,
	}

	if err := uc.ledger.Place(ctx, order); err != nil {
		return nil, err
	}

	if _, err := uc.cartRepo.ClearByEmail(ctx, email); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("email", email).Msg("failed to clear cart after order")
	}

	uc.publish(entity.EventOrderPlaced, order)
	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string, actor Actor) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(order.Email) {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}
	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, email string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByEmail(ctx, email)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.ListAll(ctx)
}

func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, errors.Validation("orderStatus is required", nil)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.orderRepo.GetByID(ctx, id)
}

// DeleteOrder removes the order and returns its units to stock.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, id string, actor Actor) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(order.Email) {
		return errors.Forbidden("You don't have permission to delete this order", nil)
	}

	if err := uc.ledger.Cancel(ctx, order); err != nil {
		return err
	}

	uc.publish(entity.EventOrderDeleted, order)
	return nil
}

func (uc *OrderUseCase) publish(kind string, order *entity.Order) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.Publish(entity.DashboardEvent{
		Type:      kind,
		OrderID:   order.ID,
		Total:     order.Total.Float64(),
		Timestamp: uc.now(),
	})
}

func orderValue(details []entity.OrderDetail, products map[string]*entity.Product) entity.Amount {
	sum := decimal.Zero
	for _, d := range details {
		p := products[d.ProductID]
		sum = sum.Add(p.Price.Decimal().Mul(decimal.NewFromInt(int64(d.Quantity))))
	}
	return entity.Amount(sum.Round(2).InexactFloat64())
}
