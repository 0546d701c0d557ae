package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// CartService implements the per-user cart operations.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

// ListByOwner returns the cart rows for email. Listing without an owner is
// rejected; a cart is always scoped to the identity that filled it.
func (s *CartService) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	return s.repo.ListByEmail(ctx, email)
}

// Add inserts a cart row. Duplicate identical rows are allowed; quantity is
// expressed by repetition.
func (s *CartService) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("email", item.Email).Str("menu_item_id", item.MenuItemID).Msg("cart item added")
	return created, nil
}

func (s *CartService) Remove(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
