package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/trade-desk/trade_desk/internal/auth"
	"github.com/trade-desk/trade_desk/internal/client/api"
	"github.com/trade-desk/trade_desk/internal/client/session"
)

func stubInputs(t *testing.T, email, password string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
	})
}

func newTestApp(t *testing.T, baseURL string) (*App, *bytes.Buffer) {
	t.Helper()
	client := api.New(baseURL)
	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	sess := session.New(client, store)
	sess.Hydrate()

	out := &bytes.Buffer{}
	return NewApp(sess, client, strings.NewReader(""), out), out
}

func TestLoginFormValidationFailure(t *testing.T) {
	stubInputs(t, "", "")
	app, out := newTestApp(t, "http://127.0.0.1:0/api")

	err := app.Login(context.Background())
	require.Error(t, err)
	require.Contains(t, out.String(), "El email es requerido")
	require.Contains(t, out.String(), "La contraseña es requerida")
	require.False(t, app.isLoggedIn())
}

func TestLoginAndDashboard(t *testing.T) {
	token, err := auth.SignToken("user-123", []byte("secret"), time.Hour)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"` + token + `"}`))
	}))
	defer srv.Close()

	stubInputs(t, "test@example.com", "Password123!")
	app, out := newTestApp(t, srv.URL+"/api")

	require.NoError(t, app.Login(context.Background()))
	require.True(t, app.isLoggedIn())
	require.Contains(t, out.String(), "¡Hola test@example.com!")

	app.Logout()
	require.False(t, app.isLoggedIn())
}

func TestLoginInvalidCredentialsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Credenciales inválidas"}`))
	}))
	defer srv.Close()

	stubInputs(t, "test@example.com", "wrong")
	app, out := newTestApp(t, srv.URL+"/api")

	require.Error(t, app.Login(context.Background()))
	require.Contains(t, out.String(), "Credenciales inválidas")
}

func TestNewOperationRequiresSession(t *testing.T) {
	app, out := newTestApp(t, "http://127.0.0.1:0/api")

	require.Error(t, app.NewOperation(context.Background()))
	require.Contains(t, out.String(), "Inicia sesión")
}
