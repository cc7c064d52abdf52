package usecase

import (
	"context"
	"strings"

	"ubjewellers/internal/domain/entity"
	"ubjewellers/internal/domain/service"
	"ubjewellers/pkg/errors"
)

type PaymentUseCase struct {
	provider        service.PaymentProvider
	defaultCurrency string
}

func NewPaymentUseCase(provider service.PaymentProvider, defaultCurrency string) *PaymentUseCase {
	return &PaymentUseCase{
		provider:        provider,
		defaultCurrency: defaultCurrency,
	}
}

type PaymentIntentInput struct {
	Price    entity.Amount `json:"price"`
	Currency string        `json:"currency"`
}

func (uc *PaymentUseCase) CreatePaymentIntent(ctx context.Context, input PaymentIntentInput) (string, error) {
	amount := input.Price.MinorUnits()
	if amount <= 0 {
		return "", errors.Validation("price must be greater than zero", nil)
	}

	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = uc.defaultCurrency
	}

	return uc.provider.CreatePaymentIntent(ctx, amount, currency)
}
