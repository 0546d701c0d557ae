package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

const defaultTimeout = 10 * time.Second

// StripeGateway mints payment intents against Stripe. Every call runs under
// an explicit timeout so a hung processor cannot stall the request.
type StripeGateway struct {
	timeout time.Duration
	log     zerolog.Logger
}

func NewStripeGateway(apiKey string, timeout time.Duration, log zerolog.Logger) *StripeGateway {
	stripe.Key = apiKey
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &StripeGateway{timeout: timeout, log: log}
}

// CreateIntent asks Stripe for a card payment intent of amountMinor in the
// given currency and returns its client secret.
func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create intent: %w", err)
	}

	g.log.Debug().Str("intent_id", intent.ID).Int64("amount", amountMinor).Msg("stripe intent created")
	return intent.ClientSecret, nil
}
