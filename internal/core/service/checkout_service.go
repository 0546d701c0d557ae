package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

const intentCurrency = "usd"

// CheckoutService runs the settlement protocol: quote an intent against the
// payment gateway, then persist the confirmed payment and purge the paid
// cart rows.
type CheckoutService struct {
	payments ports.PaymentRepository
	carts    ports.CartRepository
	gateway  ports.PaymentGateway
	logger   zerolog.Logger
}

func NewCheckoutService(
	payments ports.PaymentRepository,
	carts ports.CartRepository,
	gateway ports.PaymentGateway,
	logger zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{payments: payments, carts: carts, gateway: gateway, logger: logger}
}

// CreateIntent validates the price and asks the gateway to mint an intent.
// Nothing is persisted here; the client completes the charge against the
// processor directly with the returned secret.
func (s *CheckoutService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", domain.ErrInvalidPrice
	}

	amount := toMinorUnits(price)
	if amount <= 0 {
		return "", domain.ErrInvalidPrice
	}

	secret, err := s.gateway.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		s.logger.Error().Err(err).Int64("amount", amount).Msg("payment intent creation failed")
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentGateway, err)
	}

	s.logger.Info().Int64("amount", amount).Msg("payment intent created")
	return secret, nil
}

// Confirm persists the payment record, then purges the referenced cart rows.
// The two steps are not transactional: when the purge fails after the insert
// succeeded, the persisted payment is reported alongside the error so
// operators can reconcile the paid-but-not-purged cart.
func (s *CheckoutService) Confirm(ctx context.Context, in ports.ConfirmPaymentInput) (*ports.ConfirmResult, error) {
	payment := &domain.Payment{
		Email:         in.Email,
		Price:         in.Price,
		TransactionID: in.TransactionID,
		Date:          in.Date,
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        in.Status,
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	inserted, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	// Purge is by id only, without re-filtering by owner. Absent ids purge
	// zero rows, so a duplicate confirm inserts a second payment but removes
	// nothing.
	purged, err := s.carts.DeleteMany(ctx, in.CartIDs)
	if err != nil {
		s.logger.Error().Err(err).
			Str("payment_id", inserted.ID).
			Str("email", in.Email).
			Strs("cart_ids", in.CartIDs).
			Msg("cart purge failed after payment insert; manual reconciliation required")
		return &ports.ConfirmResult{Payment: inserted}, fmt.Errorf("%w: payment %s", domain.ErrCartPurgeFailed, inserted.ID)
	}

	s.logger.Info().
		Str("payment_id", inserted.ID).
		Str("email", in.Email).
		Float64("price", in.Price).
		Int64("purged", purged).
		Msg("payment confirmed")

	return &ports.ConfirmResult{Payment: inserted, PurgedCount: purged}, nil
}

// toMinorUnits converts a major-unit price to integer cents, truncating any
// fractional cent. The nudge absorbs binary float error so 19.99 maps to
// 1999 rather than 1998; 19.999 still truncates to 1999.
func toMinorUnits(price float64) int64 {
	return int64(price*100 + 1e-6)
}
