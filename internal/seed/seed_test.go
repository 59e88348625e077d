package seed

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/trade-desk/trade_desk/internal/identity"
	"github.com/trade-desk/trade_desk/internal/logging"
)

func TestRunCreatesUserOnce(t *testing.T) {
	repo := identity.NewMemoryRepository()
	ctx := context.Background()

	if err := Run(ctx, repo, logging.Discard()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	user, err := repo.FindByEmail(ctx, TestEmail)
	if err != nil {
		t.Fatalf("find seeded user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(TestPassword)); err != nil {
		t.Fatalf("seeded hash does not match password: %v", err)
	}

	// Second run must be a no-op, not a duplicate-key failure.
	if err := Run(ctx, repo, logging.Discard()); err != nil {
		t.Fatalf("second run: %v", err)
	}

	again, err := repo.FindByEmail(ctx, TestEmail)
	if err != nil {
		t.Fatalf("find after rerun: %v", err)
	}
	if again.ID != user.ID {
		t.Fatal("rerun must not replace the seeded user")
	}
}
