package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// CartRepository defines the persistence boundary for cart line items.
type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	Insert(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	// Delete removes a single item and reports whether anything was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// DeleteMany removes every item whose id is in ids and returns the number
	// actually removed. Absent ids are skipped, not errors.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}
