// Package main implements the entry point for the Jackut API server, a small
// social network core: accounts, friendships, direct messages and
// communities.
package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/wbrmagalhaes/jackut-api/internal/config"
	"github.com/wbrmagalhaes/jackut-api/internal/platform/logger"
)

func main() {
	// A missing .env is fine; the environment can carry everything.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"persistence_driver", cfg.Persistence.Driver)

	app, err := newApplication(context.Background(), cfg, appLogger)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.close()

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
