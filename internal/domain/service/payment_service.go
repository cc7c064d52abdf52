package service

import (
	"context"
)

type PaymentProvider interface {
	// CreatePaymentIntent returns the client secret the browser confirms with.
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}
