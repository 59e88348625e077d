package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trade-desk/trade_desk/internal/client/api"
	"github.com/trade-desk/trade_desk/internal/client/cli"
	"github.com/trade-desk/trade_desk/internal/client/session"
)

const defaultAPIURL = "http://localhost:8080/api"

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	sessionPath := os.Getenv("SESSION_FILE")
	if sessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolve home dir: %v\n", err)
			os.Exit(1)
		}
		sessionPath = filepath.Join(home, ".trade_desk", "session.json")
	}

	client := api.New(baseURL)
	sess := session.New(client, session.NewFileStore(sessionPath))
	sess.Hydrate()

	app := cli.NewApp(sess, client, os.Stdin, os.Stdout)
	if sess.IsAuthenticated() {
		app.Dashboard()
	}

	cli.RunREPL(context.Background(), app, bufio.NewScanner(os.Stdin), os.Stdout)
}
