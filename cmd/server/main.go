// Package main implements the entry point for the employee task
// tracker API server, which manages employees and their assigned
// tasks behind a JWT-protected REST interface.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/platform/logger"
)

// main initializes configuration, logging, the database, and the
// application's services, then starts the HTTP server and blocks
// until shutdown.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	// A missing .env file is not an error; environment variables and
	// config files are equally valid sources.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, db, appLogger)
	if err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
