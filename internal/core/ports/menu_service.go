package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// MenuService defines use-case operations on the menu catalog.
type MenuService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, item *domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}
