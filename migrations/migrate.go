package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Schema files are split per backend: postgres uses BIGSERIAL keys, sqlite
// uses INTEGER PRIMARY KEY AUTOINCREMENT.
//
//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations for the given driver
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	var dir string
	switch driver {
	case "pgx":
		dir = "postgres"
	case "sqlite3":
		dir = "sqlite"
	default:
		return fmt.Errorf("migration error: unknown driver %q", driver)
	}

	if err := goose.SetDialect(driver); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
