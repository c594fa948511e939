package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/migrations"
)

// DB wraps the shared *sql.DB handle together with everything the
// repositories need to talk to the active engine: the squirrel statement
// builder configured with the engine's placeholder format, the goose
// dialect used for schema bootstrap, and the error classifier.
//
// The handle is the single cross-request shared resource of the service;
// database/sql serialises access to it internally, so the DB value is safe
// for concurrent use. Opening and closing the handle is owned by the
// caller of NewConnectPostgres/NewConnectSQLite (normally main).
type DB struct {
	*sql.DB
	builder            sq.StatementBuilderType
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the active engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
