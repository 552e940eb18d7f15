package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tasktrack/pkg/database"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	CreateTableIfNotExists(db)
	return db
}

func createTestAccount(t *testing.T, db *sql.DB, username string) int64 {
	t.Helper()
	account, err := NewAccountRepository(db).Create(context.Background(), username, "hash")
	require.NoError(t, err)
	return account.ID
}
