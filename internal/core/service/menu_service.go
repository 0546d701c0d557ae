package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// MenuCache abstracts the catalog listing cache (Redis).
type MenuCache interface {
	Get(ctx context.Context) ([]domain.MenuItem, bool)
	Set(ctx context.Context, items []domain.MenuItem)
	Invalidate(ctx context.Context)
}

// MenuService implements the catalog operations with a cache-aside listing.
// Cache failures degrade to repository reads, never to request failures.
type MenuService struct {
	repo   ports.MenuRepository
	cache  MenuCache
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, cache MenuCache, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, cache: cache, logger: logger}
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, items)
	}
	return items, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MenuService) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info().Str("menu_item_id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

func (s *MenuService) Update(ctx context.Context, id string, item *domain.MenuItem) error {
	if err := s.repo.Update(ctx, id, item); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
