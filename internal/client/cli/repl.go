package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type commandSurface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	NewOperation(ctx context.Context) error
	Dashboard()
	Logout()
}

// RunREPL reads commands and dispatches to the app until EOF or exit.
// Handler errors are already reported to the user; the loop keeps going.
func RunREPL(ctx context.Context, a commandSurface, scanner *bufio.Scanner, out io.Writer) {
	for {
		if a.isLoggedIn() {
			fmt.Fprint(out, "td (autenticado)> ")
		} else {
			fmt.Fprint(out, "td> ")
		}
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Comandos: dashboard, operacion, logout, exit")
			} else {
				fmt.Fprintln(out, "Comandos: login, exit")
			}
		case "login":
			_ = a.Login(ctx)
		case "dashboard":
			a.Dashboard()
		case "operacion", "op":
			_ = a.NewOperation(ctx)
		case "logout":
			a.Logout()
		case "exit", "quit":
			fmt.Fprintln(out, "¡Hasta luego!")
			return
		default:
			fmt.Fprintln(out, "Comando desconocido:", parts[0])
		}
	}
}
