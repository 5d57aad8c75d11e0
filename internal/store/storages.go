package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bookmark-keeper/internal/config"
	"github.com/MKhiriev/go-bookmark-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on, together
// with the shared database handle (exposed for migrations and shutdown).
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository

	DB *DB
}

// NewStorages connects to the database backend selected by cfg.DB.Driver and
// constructs all repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		BookmarkRepository: NewBookmarkRepository(db, log),
		DB:                 db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
