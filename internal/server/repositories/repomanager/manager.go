// Package repomanager bundles the per-aggregate repositories behind a
// single factory so services can rebind them to a transaction handle, and
// selects the storage backend from the DSN.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Tasks(db dbx.DBTX) tasks.Repository
}

// Open connects to the store described by dsn and returns the connection
// together with the matching repository manager. A postgres:// or
// postgresql:// DSN selects PostgreSQL via pgx; anything else is treated as
// a SQLite file path or URI (the file-based default).
func Open(dsn string) (*sql.DB, RepositoryManager, error) {

	driver := "sqlite"
	var m RepositoryManager = &SQLiteRepositoryManager{}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		driver = "pgx"
		m = &PostgresRepositoryManager{}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := m.RunMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migration error: %w", err)
	}

	return db, m, nil
}
