package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// UserRepository defines the persistence boundary for user records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	PromoteToAdmin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	EstimatedCount(ctx context.Context) (int64, error)
}
