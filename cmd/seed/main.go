package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trade-desk/trade_desk/internal/config"
	"github.com/trade-desk/trade_desk/internal/identity"
	"github.com/trade-desk/trade_desk/internal/infra"
	"github.com/trade-desk/trade_desk/internal/logging"
	"github.com/trade-desk/trade_desk/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	db, err := infra.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	repo := identity.NewPostgresRepository(db)
	if err := seed.Run(ctx, repo, logger); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
