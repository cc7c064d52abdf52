package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"ubjewellers/internal/domain/service"
)

func NewStripeProvider(secretKey string) service.PaymentProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return guard("stripe", func(ctx context.Context, amountMinor int64, currency string) (string, error) {
		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(amountMinor),
			Currency:           stripe.String(currency),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}
		params.Context = ctx

		intent, err := sc.PaymentIntents.New(params)
		if err != nil {
			return "", err
		}
		return intent.ClientSecret, nil
	})
}
