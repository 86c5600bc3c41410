package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gotasks/internal/dbx"
	"github.com/dmitrijs2005/gotasks/internal/server/migrations"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/gotasks/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct {
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Tasks(db dbx.DBTX) tasks.Repository {
	return tasks.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, "postgres")
}
