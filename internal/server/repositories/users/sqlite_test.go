package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gotasks/internal/common"
	"github.com/dmitrijs2005/gotasks/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  username TEXT NOT NULL UNIQUE,
  email TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)

	return db
}

func TestCreate_AssignsIDAndPersists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u, err := r.Create(ctx, &models.User{UserName: "alice", Email: "alice@example.com", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)

	var username, email, hash string
	err = db.QueryRow(`SELECT username, email, password_hash FROM users WHERE id=?`, u.ID).
		Scan(&username, &email, &hash)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "alice@example.com", email)
	assert.Equal(t, "h1", hash)
}

func TestCreate_DuplicateUserName(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.User{UserName: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = r.Create(ctx, &models.User{UserName: "alice", PasswordHash: "h2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorAlreadyExists))
}

func TestGetByUserName(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{UserName: "alice", Email: "a@b.c", PasswordHash: "h1"})
	require.NoError(t, err)

	got, err := r.GetByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, "h1", got.PasswordHash)

	_, err = r.GetByUserName(ctx, "nobody")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestGetByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	created, err := r.Create(ctx, &models.User{UserName: "bob", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.UserName)

	_, err = r.GetByID(ctx, created.ID+1000)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
