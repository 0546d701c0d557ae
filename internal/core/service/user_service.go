package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bistroboss/ordering-system/internal/core/domain"
	"github.com/bistroboss/ordering-system/internal/core/ports"
)

// UserService implements registration, login and the admin-facing user
// operations.
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

// Register creates a user on first sight of an email. Registering an existing
// email is a no-op that reports non-creation rather than an error.
func (s *UserService) Register(ctx context.Context, user *domain.User) (*ports.RegisterResult, error) {
	if user == nil || user.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return &ports.RegisterResult{InsertedID: nil, Message: "User already exists"}, nil
	}

	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		user.Password = ""
	}
	user.CreatedAt = time.Now().UTC()

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return &ports.RegisterResult{InsertedID: nil, Message: "User already exists"}, nil
		}
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return &ports.RegisterResult{InsertedID: &created.ID}, nil
}

// Login verifies a stored password hash and issues a session token carrying
// the proven email. This is the hardened issuance path; the raw token
// endpoint embeds whatever it is given.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(map[string]any{"email": user.Email})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// IsAdmin reports whether the stored role for email is admin. Unknown
// identities are simply not admins, not errors.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id string) error {
	if err := s.repo.PromoteToAdmin(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user promoted to admin")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
