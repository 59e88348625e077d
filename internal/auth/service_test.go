package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/trade-desk/trade_desk/internal/apperr"
	"github.com/trade-desk/trade_desk/internal/identity"
)

func newTestService(t *testing.T, secret string) (*Service, identity.User) {
	t.Helper()
	repo := identity.NewMemoryRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := identity.User{
		ID:           uuid.NewString(),
		Email:        "test@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return NewService(identity.NewService(repo), secret, 24*time.Hour), user
}

func TestLoginIssuesTokenWithUserID(t *testing.T) {
	svc, user := newTestService(t, "test-secret")

	token, err := svc.Login(context.Background(), identity.Credentials{Email: "test@example.com", Password: "Password123!"})
	require.NoError(t, err)

	userID, err := VerifyToken(token, []byte("test-secret"))
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService(t, "test-secret")

	_, err := svc.Login(context.Background(), identity.Credentials{Email: "test@example.com", Password: "nope"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindAuth, appErr.Kind)
}

func TestLoginMissingSecret(t *testing.T) {
	svc, _ := newTestService(t, "")

	_, err := svc.Login(context.Background(), identity.Credentials{Email: "test@example.com", Password: "Password123!"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindInternal, appErr.Kind, "missing secret must not look like an auth failure")
}
