package store

import (
	"database/sql"

	"github.com/ekondratev/meetsync/internal/logger"
	"github.com/ekondratev/meetsync/migrations"
)

// DB wraps the raw database handle together with the application logger so
// repositories can share one connection and one migration entry point.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
