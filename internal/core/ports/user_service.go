package ports

import (
	"context"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

// RegisterResult reports the outcome of an idempotent registration. When the
// email already existed, InsertedID is nil and Message explains why.
type RegisterResult struct {
	InsertedID *string `json:"insertedId"`
	Message    string  `json:"message,omitempty"`
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	Register(ctx context.Context, user *domain.User) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
