package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/migrations"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type SQLiteRepositoryManager struct {
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "sqlite")
}
