// Package seed provisions the accounts the application expects to exist.
// There is no signup endpoint; users only ever enter the system here.
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trade-desk/trade_desk/internal/identity"
)

const (
	// TestEmail and TestPassword identify the seeded development account.
	TestEmail    = "test@example.com"
	TestPassword = "Password123!"
)

// Run creates the test user unless it already exists. Idempotent.
func Run(ctx context.Context, repo identity.Repository, logger *slog.Logger) error {
	_, err := repo.FindByEmail(ctx, TestEmail)
	if err == nil {
		logger.Info("seed user already exists", "email", TestEmail)
		return nil
	}
	if !errors.Is(err, identity.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := identity.User{
		ID:           uuid.NewString(),
		Email:        TestEmail,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(ctx, user); err != nil {
		return err
	}

	logger.Info("seed user created", "email", TestEmail, "id", user.ID)
	return nil
}
