package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Veraticus/market-basket/internal/common"
	"github.com/Veraticus/market-basket/internal/dataset"
	"github.com/Veraticus/market-basket/internal/storage"
	"github.com/spf13/viper"
)

// databasePath resolves the SQLite path from config, falling back to the
// standard per-user data directory.
func databasePath() (string, error) {
	if path := viper.GetString("data.db"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "basket", "basket.db"), nil
}

// openStorage opens the database and brings the schema current.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", path, err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}
	return store, nil
}

// loadTransactions reads a dataset from a file when a path is given,
// otherwise from previously imported transactions in the database.
func loadTransactions(ctx context.Context, path string) (*dataset.TransactionSet, error) {
	if path != "" {
		return dataset.LoadFile(path)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	txns, err := store.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, common.NewUserError(
			"no dataset given and no imported transactions found; run 'basket import <file>' first",
			common.ErrNoTransactions)
	}
	return dataset.FromTransactions(txns), nil
}
