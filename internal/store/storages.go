package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer. The sole persisted entity of this service is the
// user, so there is exactly one repository today.
type Storages struct {
	UserRepository UserRepository

	// db is retained so that the caller can release the connection at
	// shutdown via Close.
	db *DB
}

// NewStorages initialises the storage layer from configuration:
//  1. Opens the database connection for the engine implied by the DSN
//     (postgres:// DSNs go to PostgreSQL, anything else is treated as an
//     SQLite file path).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to a fresh [UserRepository].
//
// The returned Storages owns the connection until Close is called.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		db:             db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
