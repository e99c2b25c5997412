package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/ludwinsubbaiahhh/employee-task-tracker/migrations"
)

// runMigrations applies any pending schema migrations from the embedded
// migrations filesystem. Migrations run on every startup; goose tracks
// applied versions so this is a no-op on an up-to-date database.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	migrationLogger := logger.With(slog.String("component", "migrations"))

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	startTime := time.Now()
	if err := goose.Up(db, "."); err != nil {
		migrationLogger.Error("Migration run failed", "error", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		migrationLogger.Warn("Failed to retrieve migration version", "error", err)
	}

	migrationLogger.Info("Migrations applied",
		"version", version,
		"duration_ms", time.Since(startTime).Milliseconds())
	return nil
}
