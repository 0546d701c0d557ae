package ports

import (
	"context"
	"time"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// ConfirmPaymentInput carries a client-confirmed payment into the settlement
// protocol.
type ConfirmPaymentInput struct {
	Email         string
	Price         float64
	TransactionID string
	Date          time.Time
	CartIDs       []string
	MenuItemIDs   []string
	Status        string
}

// ConfirmResult reports both sub-steps of a confirm: the persisted payment
// and how many cart rows the purge removed. PurgedCount is meaningful even
// when the purge removed nothing (re-confirming already-settled ids).
type ConfirmResult struct {
	Payment     *domain.Payment
	PurgedCount int64
}

// CheckoutService is the settlement protocol: quote an intent, then persist
// the confirmed payment and purge the paid cart rows.
type CheckoutService interface {
	// CreateIntent validates the price and asks the gateway for a payment
	// intent. Nothing is persisted.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
	// Confirm persists the payment and purges the referenced cart items.
	Confirm(ctx context.Context, in ConfirmPaymentInput) (*ConfirmResult, error)
}
