package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/trade-desk/trade_desk/internal/apperr"
)

// Service verifies credentials against the user store.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate looks up the account by email and compares the password
// against the stored bcrypt hash. A missing account and a wrong password
// produce the same error so callers cannot enumerate accounts.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	user, err := s.repo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, apperr.InvalidCredentials()
		}
		return User{}, apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)); err != nil {
		return User{}, apperr.InvalidCredentials()
	}

	return user, nil
}
