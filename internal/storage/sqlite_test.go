package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/market-basket/internal/model"
	"github.com/stretchr/testify/require"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err, "failed to create storage")

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx), "failed to migrate")

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func createTestTransactions() []model.Transaction {
	baskets := [][]string{
		{"bread", "eggs", "milk"},
		{"bread", "butter"},
		{"jam", "milk", "tea"},
	}
	txns := make([]model.Transaction, len(baskets))
	for i, items := range baskets {
		txns[i] = model.Transaction{ID: i, Items: items}
	}
	return txns
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Running migrations again must be a no-op.
	require.NoError(t, store.Migrate(ctx))

	var version int
	require.NoError(t, store.db.QueryRow("PRAGMA user_version").Scan(&version))
	require.Equal(t, ExpectedSchemaVersion, version)
}
