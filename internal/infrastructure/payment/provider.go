package payment

import (
	"context"

	"github.com/sony/gobreaker/v2"

	"ubjewellers/internal/infrastructure/circuitbreaker"
	"ubjewellers/pkg/errors"
)

type chargeFunc func(ctx context.Context, amountMinor int64, currency string) (string, error)

// guardedProvider runs a gateway call behind a circuit breaker and maps every
// failure to a downstream error.
type guardedProvider struct {
	name   string
	cb     *gobreaker.CircuitBreaker[string]
	charge chargeFunc
}

func guard(name string, charge chargeFunc) *guardedProvider {
	return &guardedProvider{
		name:   name,
		cb:     circuitbreaker.New[string](name),
		charge: charge,
	}
}

func (p *guardedProvider) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	secret, err := p.cb.Execute(func() (string, error) {
		return p.charge(ctx, amountMinor, currency)
	})
	if err != nil {
		return "", errors.Downstream(p.name, err)
	}
	return secret, nil
}
