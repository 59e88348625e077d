package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trade-desk/trade_desk/internal/apperr"
)

func seedUser(t *testing.T, repo Repository, email, password string) User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestAuthenticateSuccess(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	seeded := seedUser(t, repo, "test@example.com", "Password123!")

	user, err := svc.Authenticate(context.Background(), Credentials{Email: "test@example.com", Password: "Password123!"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != seeded.ID {
		t.Fatalf("expected user %s, got %s", seeded.ID, user.ID)
	}
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	seedUser(t, repo, "test@example.com", "Password123!")

	_, unknownErr := svc.Authenticate(context.Background(), Credentials{Email: "nobody@example.com", Password: "Password123!"})
	_, wrongErr := svc.Authenticate(context.Background(), Credentials{Email: "test@example.com", Password: "wrong"})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("expected both attempts to fail")
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("unknown-email and wrong-password errors differ: %q vs %q", unknownErr, wrongErr)
	}

	appErr, ok := apperr.As(unknownErr)
	if !ok || appErr.Kind != apperr.KindAuth {
		t.Fatalf("expected auth-kind error, got %v", unknownErr)
	}
	if appErr.Message != "Credenciales inválidas" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestAuthenticateRepositoryFailure(t *testing.T) {
	svc := NewService(failingRepo{})

	_, err := svc.Authenticate(context.Background(), Credentials{Email: "test@example.com", Password: "x"})
	appErr, ok := apperr.As(err)
	if !ok || appErr.Kind != apperr.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

type failingRepo struct{}

func (failingRepo) Create(context.Context, User) error { return errors.New("down") }
func (failingRepo) FindByEmail(context.Context, string) (User, error) {
	return User{}, errors.New("down")
}
