// Package app wires configuration, logging, stores, and seeded data into
// a runnable application.
package app

import (
	"context"
	"fmt"
	"log/slog"

	catalogmem "github.com/openshelf/circulation/internal/adapter/memory/catalog"
	holdmem "github.com/openshelf/circulation/internal/adapter/memory/hold"
	loanmem "github.com/openshelf/circulation/internal/adapter/memory/loan"
	usermem "github.com/openshelf/circulation/internal/adapter/memory/user"
	"github.com/openshelf/circulation/internal/config"
	"github.com/openshelf/circulation/internal/seed"
	catalogsvc "github.com/openshelf/circulation/internal/service/catalog"
	circsvc "github.com/openshelf/circulation/internal/service/circulation"
)

// App holds the wired object graph: one set of in-memory stores and the
// services working over them. Loans and holds always start empty; items
// and users come from the configured seed file or the built-in fixture.
type App struct {
	Cfg *config.Config
	Log *slog.Logger

	Items *catalogmem.Repo
	Users *usermem.Repo
	Loans *loanmem.Repo
	Holds *holdmem.Repo

	Catalog     *catalogsvc.Service
	Circulation *circsvc.Service
}

// New loads configuration, initializes logging, builds the stores, seeds
// them, and constructs the services. configPath overrides the config
// file discovery when non-empty.
func New(ctx context.Context, configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("library", cfg.Library.Name),
		slog.String("log_level", cfg.Log.Level),
	)

	a := &App{
		Cfg:   cfg,
		Log:   logger,
		Items: catalogmem.New(),
		Users: usermem.New(),
		Loans: loanmem.New(),
		Holds: holdmem.New(),
	}

	loader := seed.NewLoader(logger, a.Items, a.Users)
	if path := cfg.Library.SeedPath; path != "" {
		if _, err := loader.LoadFile(ctx, path); err != nil {
			return nil, fmt.Errorf("seed stores: %w", err)
		}
	} else if _, err := loader.Load(ctx, seed.Default()); err != nil {
		return nil, fmt.Errorf("seed stores: %w", err)
	}

	a.Catalog = catalogsvc.NewService(logger, a.Items)
	a.Circulation = circsvc.NewService(logger, a.Items, a.Users, a.Loans, a.Holds, cfg.Circulation)

	return a, nil
}
