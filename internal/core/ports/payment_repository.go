package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// PaymentRepository defines the persistence boundary for payment records.
// Inserted payments are immutable; there is no update operation.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	EstimatedCount(ctx context.Context) (int64, error)
	// SumPrices returns the total of the price field across all payments,
	// 0 when the collection is empty.
	SumPrices(ctx context.Context) (float64, error)
}
