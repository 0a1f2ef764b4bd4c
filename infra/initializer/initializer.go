// Package initializer constructs the application's infrastructure: the
// logger, the in-memory ledger store and the event bus, plus optional demo
// seeding for fresh processes.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	infraeventbus "github.com/bankdash/backend/infra/eventbus"
	"github.com/bankdash/backend/infra/repository/memory"
	"github.com/bankdash/backend/pkg/app"
	"github.com/bankdash/backend/pkg/config"
	"github.com/bankdash/backend/pkg/domain/ledger"
	"github.com/bankdash/backend/pkg/eventbus"
)

// InitializeDependencies builds the dependency set for app.New.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	bus, err := setupEventBus(cfg.EventBus, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up event bus: %w", err)
	}
	registerEventLogging(bus, logger)

	return &app.Deps{
		Uow:    memory.New(),
		Bus:    bus,
		Logger: logger,
	}, nil
}

func setupEventBus(cfg *config.EventBus, logger *slog.Logger) (eventbus.Bus, error) {
	switch cfg.Backend {
	case "", "memory":
		return infraeventbus.NewWithMemory(logger), nil
	case "kafka":
		return infraeventbus.NewWithKafka(cfg.Brokers, cfg.Topic, logger)
	default:
		return nil, fmt.Errorf("unknown event bus backend %q", cfg.Backend)
	}
}

// registerEventLogging subscribes a structured-log observer to every ledger
// event type.
func registerEventLogging(bus eventbus.Bus, logger *slog.Logger) {
	log := func(ctx context.Context, event eventbus.Event) error {
		logger.Info("ledger event", "type", event.Type())
		return nil
	}
	for _, eventType := range []string{
		ledger.EventAccountCreated,
		ledger.EventAccountDeleted,
		ledger.EventTransactionRecorded,
		ledger.EventTransactionReversed,
	} {
		bus.Register(eventType, log)
	}
}
