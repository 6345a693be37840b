package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/market-basket/internal/model"
)

// itemSeparator joins a transaction's items into one column. Items are
// split on commas at load time, so a comma can never appear in a name;
// validateTransactions enforces that before any write.
const itemSeparator = ","

// SaveTransactions appends transactions to the database in a single
// database transaction.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (items, item_count) VALUES (?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if _, err := stmt.ExecContext(ctx, strings.Join(txn.Items, itemSeparator), len(txn.Items)); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	return tx.Commit()
}

// GetTransactions returns every stored transaction in insertion order.
// IDs are renumbered to the row position so mining sees a dense ID space.
func (s *SQLiteStorage) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT items FROM transactions ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var items string
		if err := rows.Scan(&items); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, model.Transaction{
			ID:    len(txns),
			Items: strings.Split(items, itemSeparator),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// GetTransactionCount returns the number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// ClearTransactions removes every stored transaction, used when
// re-importing a dataset from scratch.
func (s *SQLiteStorage) ClearTransactions(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	return nil
}
