package auth

import (
	"context"
	"errors"
	"time"

	"github.com/trade-desk/trade_desk/internal/apperr"
	"github.com/trade-desk/trade_desk/internal/identity"
)

// Service authenticates credentials and issues signed tokens.
type Service struct {
	ids    *identity.Service
	secret []byte
	ttl    time.Duration
}

// NewService builds the authentication service. The signing secret and token
// lifetime come from validated startup configuration.
func NewService(ids *identity.Service, secret string, ttl time.Duration) *Service {
	return &Service{ids: ids, secret: []byte(secret), ttl: ttl}
}

// Login verifies credentials and mints a token for the account. A missing
// signing secret is a server misconfiguration, surfaced as an internal error
// rather than an authentication failure.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) (string, error) {
	user, err := s.ids.Authenticate(ctx, creds)
	if err != nil {
		return "", err
	}

	if len(s.secret) == 0 {
		return "", apperr.Internal(errors.New("JWT_SECRET no está configurado"))
	}

	token, err := SignToken(user.ID, s.secret, s.ttl)
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}
