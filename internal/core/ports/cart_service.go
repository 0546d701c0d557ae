package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// CartService defines use-case operations on a user's cart.
type CartService interface {
	// ListByOwner returns the cart rows owned by email. Unscoped listing is
	// unsupported: an empty email is rejected.
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)
	Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	Remove(ctx context.Context, id string) (bool, error)
}
