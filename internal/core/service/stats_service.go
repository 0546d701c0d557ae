package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// StatsService computes the administrative dashboard rollup.
type StatsService struct {
	users    ports.UserRepository
	menu     ports.MenuRepository
	payments ports.PaymentRepository
	logger   zerolog.Logger
}

func NewStatsService(
	users ports.UserRepository,
	menu ports.MenuRepository,
	payments ports.PaymentRepository,
	logger zerolog.Logger,
) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments, logger: logger}
}

// AdminStats returns estimated document counts plus total revenue. Counts are
// estimates, good enough for a dashboard but not for reconciliation. Revenue
// over an empty payment collection is 0.
func (s *StatsService) AdminStats(ctx context.Context) (*ports.AdminStats, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	menuItems, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count menu items: %w", err)
	}
	orders, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	revenue, err := s.payments.SumPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	return &ports.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}
