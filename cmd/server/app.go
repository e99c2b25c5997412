package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/config"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/platform/postgres"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/service/auth"
	"github.com/ludwinsubbaiahhh/employee-task-tracker/internal/store"
)

// application holds the fully wired dependencies of the server.
// Everything downstream of main receives its collaborators from here
// rather than constructing them itself.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	employeeStore store.EmployeeStore
	taskStore     store.TaskStore
	jwtService    auth.JWTService
	keyDirectory  auth.KeyDirectory
}

// newApplication wires stores and services from the given
// configuration and database handle.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		employeeStore: postgres.NewPostgresEmployeeStore(db, logger),
		taskStore:     postgres.NewPostgresTaskStore(db, logger),
		jwtService:    jwtService,
		keyDirectory:  auth.NewStaticKeyDirectory(cfg.Auth.APIKeys),
	}, nil
}

// cleanup releases application resources. It is called after the HTTP
// server has finished shutting down.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		} else {
			app.logger.Debug("Database connection closed")
		}
	}
}
