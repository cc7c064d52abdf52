package payment

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"ubjewellers/internal/domain/service"
)

// NewMidtransProvider returns a provider whose client secret is a Snap
// transaction token. Midtrans settles in whole rupiah, so minor units are
// divided back down.
func NewMidtransProvider(serverKey, environment string) service.PaymentProvider {
	env := midtrans.Sandbox
	if strings.EqualFold(environment, "production") {
		env = midtrans.Production
	}

	var sc snap.Client
	sc.New(serverKey, env)

	return guard("midtrans", func(ctx context.Context, amountMinor int64, currency string) (string, error) {
		req := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  "ubj-" + uuid.NewString(),
				GrossAmt: amountMinor / 100,
			},
		}

		resp, merr := sc.CreateTransaction(req)
		if merr != nil {
			return "", merr
		}
		return resp.Token, nil
	})
}
