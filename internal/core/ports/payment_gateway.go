package ports

import "context"

// PaymentGateway wraps the external payment processor's intent-creation
// capability. The returned client secret lets the client complete the charge
// against the processor directly.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (clientSecret string, err error)
}
