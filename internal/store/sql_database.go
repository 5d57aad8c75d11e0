// Package store implements the persistence layer of the application.
//
// It provides database connectors for the supported backends (PostgreSQL and
// SQLite), repositories for the user and bookmark entities, and sentinel
// errors that the service layer matches with errors.Is. Every repository
// query that touches bookmarks is scoped by the owning user id, so ownership
// isolation is enforced below the service layer as well.
package store

import (
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

// DB wraps a *sql.DB together with backend-specific helpers: the squirrel
// statement builder configured with the backend's placeholder format and the
// error classificator used to annotate repository log entries.
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns the squirrel statement builder configured for this
// backend's placeholder format ($1 for PostgreSQL, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported backend.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}

// isForeignKeyViolation reports whether err is a foreign-key violation
// from either supported backend.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}
