package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/wbrmagalhaes/jackut-api/internal/config"
	"github.com/wbrmagalhaes/jackut-api/internal/platform/file"
	"github.com/wbrmagalhaes/jackut-api/internal/platform/memory"
	"github.com/wbrmagalhaes/jackut-api/internal/platform/postgres"
	"github.com/wbrmagalhaes/jackut-api/internal/service"
	"github.com/wbrmagalhaes/jackut-api/internal/service/auth"
	"github.com/wbrmagalhaes/jackut-api/internal/store"
)

// application holds the wired dependency graph for the server.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	sessions auth.SessionService
	service  service.InteractionService

	// closers are shut down in reverse wiring order on exit.
	closers []io.Closer
}

// newApplication wires stores, services and persistence according to the
// configuration, then restores any persisted state.
func newApplication(ctx context.Context, cfg *config.Config, log *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
	}

	directory := memory.NewAccountDirectory(bcrypt.DefaultCost)

	sessions, err := auth.NewSessionService(cfg.Auth, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}
	app.sessions = sessions

	snapshotter, err := app.newSnapshotter(ctx)
	if err != nil {
		return nil, err
	}

	interaction, err := service.NewInteractionService(
		directory,
		sessions,
		auth.NewBcryptVerifier(),
		snapshotter,
		log,
	)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("failed to create interaction service: %w", err)
	}
	app.service = interaction

	if err := interaction.LoadState(ctx); err != nil {
		app.close()
		return nil, fmt.Errorf("failed to restore persisted state: %w", err)
	}

	return app, nil
}

// newSnapshotter builds the persistence backend selected by the config.
func (app *application) newSnapshotter(ctx context.Context) (store.Snapshotter, error) {
	switch app.config.Persistence.Driver {
	case "postgres":
		snapshotStore, err := postgres.Open(ctx, app.config.Persistence.DatabaseURL, app.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres snapshot store: %w", err)
		}
		app.closers = append(app.closers, snapshotStore)
		return snapshotStore, nil

	case "file":
		snapshotStore, err := file.NewSnapshotStore(app.config.Persistence.FilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file snapshot store: %w", err)
		}
		return snapshotStore, nil

	default:
		app.logger.Info("persistence disabled, state is in-memory only")
		return store.NopSnapshotter{}, nil
	}
}

// close releases held resources in reverse order.
func (app *application) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			app.logger.Error("failed to close resource", "error", err)
		}
	}
	app.closers = nil
}
