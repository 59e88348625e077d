// Package session holds the client's authentication state: the current
// token and user summary, mirrored into persistent storage, plus the login
// form validation the UI runs before any network call.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// ErrLoginInFlight rejects a second login submitted while one is pending.
var ErrLoginInFlight = errors.New("ya hay un inicio de sesión en curso")

// API is the backend surface the session needs.
type API interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Context gates access to the authenticated state. Token and user are both
// present or both absent; a partial state is treated as absent and purged.
type Context struct {
	mu       sync.Mutex
	api      API
	store    *FileStore
	token    string
	user     *User
	loading  bool
	inFlight bool
}

// New builds an unhydrated session context; callers run Hydrate once at
// startup and treat the session as loading until it returns.
func New(api API, store *FileStore) *Context {
	return &Context{api: api, store: store, loading: true}
}

// Hydrate restores the persisted session. Missing or corrupt state, or a
// state with only one of token/user, is discarded and both keys purged.
func (c *Context) Hydrate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.store.Load()
	if err != nil || state.Token == "" || state.User == nil || state.User.ID == "" {
		c.store.Clear() // nolint:errcheck
		c.loading = false
		return
	}

	c.token = state.Token
	c.user = state.User
	c.loading = false
}

// Login authenticates and commits token and user to memory and storage
// together. While a login is pending, further submissions fail fast.
func (c *Context) Login(ctx context.Context, email, password string) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrLoginInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	token, err := c.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	user := &User{ID: subjectOf(token), Email: email}
	if user.ID == "" {
		return errors.New("el token recibido no contiene un usuario válido")
	}

	state := State{Token: token, User: user}
	if err := c.store.Save(state); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = token
	c.user = user
	c.mu.Unlock()
	return nil
}

// Logout clears memory and storage unconditionally. Idempotent.
func (c *Context) Logout() {
	c.mu.Lock()
	c.token = ""
	c.user = nil
	c.mu.Unlock()
	c.store.Clear() // nolint:errcheck
}

// IsAuthenticated reports whether both token and user are present.
func (c *Context) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token != "" && c.user != nil
}

// Loading reports whether startup hydration is still pending.
func (c *Context) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Token returns the current bearer token, empty when unauthenticated.
func (c *Context) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// CurrentUser returns a copy of the user summary, nil when unauthenticated.
func (c *Context) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// subjectOf extracts the "id" claim without verifying the signature; the
// client has no secret and only needs the display identity.
func subjectOf(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	id, _ := claims["id"].(string)
	return id
}
