package main

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

// migrationsDir is where the goose SQL migrations live, relative to the
// working directory of the server binary.
const migrationsDir = "migrations"

// runMigrations applies all pending goose migrations against the
// application database.
func (app *application) runMigrations() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(app.db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	app.logger.Info("database migrations applied")
	return nil
}
