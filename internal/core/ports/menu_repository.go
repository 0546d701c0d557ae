package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// MenuRepository defines the persistence boundary for the menu catalog.
type MenuRepository interface {
	FindAll(ctx context.Context) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	EstimatedCount(ctx context.Context) (int64, error)
}

// ReviewRepository exposes the read-only review listing.
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
}
