package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bankdash/backend/infra/initializer"
	"github.com/bankdash/backend/pkg/app"
	"github.com/bankdash/backend/pkg/config"
	"github.com/bankdash/backend/webapi"
	"github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := slog.Default()

	a := app.New(deps, cfg)

	if cfg.Demo.Seed {
		if err := initializer.SeedDemoData(context.Background(), a.LedgerService, logger); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return fiberApp.Listen(addr)
}
