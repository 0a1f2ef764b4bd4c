// Package app wires the application's services to their dependencies.
package app

import (
	"log/slog"

	"github.com/bankdash/backend/pkg/config"
	"github.com/bankdash/backend/pkg/eventbus"
	"github.com/bankdash/backend/pkg/repository"
	"github.com/bankdash/backend/pkg/service/dashboard"
	ledgersvc "github.com/bankdash/backend/pkg/service/ledger"
)

// Deps contains the infrastructure dependencies the services are built from.
type Deps struct {
	Uow    repository.UnitOfWork
	Bus    eventbus.Bus
	Logger *slog.Logger
}

// App holds the constructed services and their configuration.
type App struct {
	Deps   *Deps
	Config *config.App

	LedgerService    *ledgersvc.Service
	DashboardService *dashboard.Service
}

// New builds the application from its dependencies.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:             deps,
		Config:           cfg,
		LedgerService:    ledgersvc.New(deps.Uow, deps.Bus, deps.Logger),
		DashboardService: dashboard.New(deps.Uow, deps.Logger),
	}
}
