// Package cli is the terminal front end: a login form, a protected
// dashboard greeting, and an operation entry flow over the session context.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trade-desk/trade_desk/internal/client/api"
	"github.com/trade-desk/trade_desk/internal/client/session"
)

// App wires the session context and API client to terminal I/O.
type App struct {
	sess   *session.Context
	client *api.Client
	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the terminal application.
func NewApp(sess *session.Context, client *api.Client, in io.Reader, out io.Writer) *App {
	return &App{sess: sess, client: client, reader: bufio.NewReader(in), out: out}
}

// Login runs the login form: field-validated input, per-field error
// display, then the network call through the session context.
func (a *App) Login(ctx context.Context) error {
	form := session.NewLoginForm()

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	form.SetEmail(email)

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	form.SetPassword(password)

	if !form.Validate() {
		for _, field := range []string{"email", "password"} {
			if msg, ok := form.Errors()[field]; ok {
				fmt.Fprintln(a.out, msg)
			}
		}
		return errors.New("formulario inválido")
	}

	if err := a.sess.Login(ctx, form.Email(), form.Password()); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.Dashboard()
	return nil
}

// Dashboard prints the protected greeting, or a loading notice while the
// session is still hydrating.
func (a *App) Dashboard() {
	if a.sess.Loading() {
		fmt.Fprintln(a.out, "Cargando...")
		return
	}
	user := a.sess.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Inicia sesión para continuar")
		return
	}
	fmt.Fprintf(a.out, "¡Hola %s! Bienvenido a tu dashboard\n", user.Email)
}

// NewOperation prompts for an operation and submits it.
func (a *App) NewOperation(ctx context.Context) error {
	if !a.sess.IsAuthenticated() {
		fmt.Fprintln(a.out, "Inicia sesión para continuar")
		return errors.New("no autenticado")
	}

	kind, err := getSimpleText(a.reader, "Tipo (buy/sell)", a.out)
	if err != nil {
		return err
	}
	amountStr, err := getSimpleText(a.reader, "Monto", a.out)
	if err != nil {
		return err
	}
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		fmt.Fprintln(a.out, "El monto debe ser un número válido")
		return err
	}
	currency, err := getSimpleText(a.reader, "Moneda (código ISO)", a.out)
	if err != nil {
		return err
	}

	op, err := a.client.CreateOperation(ctx, a.sess.Token(), api.OperationInput{
		Type:     strings.ToLower(kind),
		Amount:   amount,
		Currency: strings.ToUpper(currency),
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.sess.Logout()
		}
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Operación creada: %s %s %.2f %s (%s)\n", op.ID, op.Type, op.Amount, op.Currency, op.CreatedAt)
	return nil
}

// Logout ends the session.
func (a *App) Logout() {
	a.sess.Logout()
	fmt.Fprintln(a.out, "Sesión cerrada")
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated()
}
