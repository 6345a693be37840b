// Package dataset loads and indexes transactional basket data: one
// transaction per line, items separated by commas. Loaded transactions
// are read-only for the rest of the run.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/Veraticus/market-basket/internal/common"
	"github.com/Veraticus/market-basket/internal/model"
)

// TransactionSet holds a fully loaded dataset together with load-time
// diagnostics. Transactions are immutable once loaded.
type TransactionSet struct {
	Transactions []model.Transaction
	// MalformedLines counts input lines that produced zero items and
	// were dropped. They are logged at load time so the total line
	// count stays auditable.
	MalformedLines int
}

// SizeStats summarizes transaction sizes for diagnostic reporting.
type SizeStats struct {
	Mean float64
	Min  int
	Max  int
}

// LoadFile reads a dataset from disk. A missing or unreadable file is
// fatal: no mining can proceed without data.
func LoadFile(path string) (*TransactionSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	set, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return set, nil
}

// Load parses one transaction per line. Each line is split on commas,
// each field is trimmed and lower-cased, empty fields are discarded, and
// duplicate items within a line collapse to one. Lines that yield zero
// items are logged as warnings and dropped; they never abort the load.
func Load(r io.Reader) (*TransactionSet, error) {
	set := &TransactionSet{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		items := parseLine(scanner.Text())
		if len(items) == 0 {
			set.MalformedLines++
			common.LogWarn("dropping transaction line", common.Fields{
				"line":  lineNo,
				"error": common.ErrMalformedInput.Error(),
			})
			continue
		}
		set.Transactions = append(set.Transactions, model.Transaction{
			ID:    len(set.Transactions),
			Items: items,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan dataset: %w", err)
	}
	return set, nil
}

// FromTransactions wraps transactions already materialized elsewhere
// (e.g. read back from storage) in a TransactionSet, renumbering IDs to
// match their position.
func FromTransactions(txns []model.Transaction) *TransactionSet {
	set := &TransactionSet{Transactions: make([]model.Transaction, len(txns))}
	for i, txn := range txns {
		txn.ID = i
		set.Transactions[i] = txn
	}
	return set
}

func parseLine(line string) []string {
	fields := strings.Split(line, ",")
	seen := make(map[string]struct{}, len(fields))
	items := make([]string, 0, len(fields))
	for _, field := range fields {
		item := strings.ToLower(strings.TrimSpace(field))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// TotalTransactionCount returns the number of well-formed transactions.
func (s *TransactionSet) TotalTransactionCount() int {
	return len(s.Transactions)
}

// UniqueItemCount returns the size of the item universe.
func (s *TransactionSet) UniqueItemCount() int {
	items := make(map[string]struct{})
	for _, txn := range s.Transactions {
		for _, item := range txn.Items {
			items[item] = struct{}{}
		}
	}
	return len(items)
}

// SizeStats returns min/max/mean item counts across transactions. All
// zeros for an empty set.
func (s *TransactionSet) SizeStats() SizeStats {
	if len(s.Transactions) == 0 {
		return SizeStats{}
	}
	stats := SizeStats{Min: s.Transactions[0].Size(), Max: s.Transactions[0].Size()}
	total := 0
	for _, txn := range s.Transactions {
		n := txn.Size()
		total += n
		if n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
	}
	stats.Mean = float64(total) / float64(len(s.Transactions))
	return stats
}
