package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/market-basket/internal/model"
)

// SaveRules upserts mined rules, replacing any previous measures for the
// same antecedent/consequent pair.
func (s *SQLiteStorage) SaveRules(ctx context.Context, rules []model.Rule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRules(rules); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules (antecedent, consequent, support, confidence, lift)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(antecedent, consequent) DO UPDATE SET
			support = excluded.support,
			confidence = excluded.confidence,
			lift = excluded.lift,
			mined_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rule := range rules {
		_, err := stmt.ExecContext(ctx,
			strings.Join(rule.Antecedent.Items(), itemSeparator),
			strings.Join(rule.Consequent.Items(), itemSeparator),
			rule.Support,
			rule.Confidence,
			rule.Lift,
		)
		if err != nil {
			return fmt.Errorf("failed to insert rule: %w", err)
		}
	}

	return tx.Commit()
}

// GetRules returns stored rules with lift of at least minLift, best lift
// first. Pass 0 for all rules.
func (s *SQLiteStorage) GetRules(ctx context.Context, minLift float64) ([]model.Rule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT antecedent, consequent, support, confidence, lift
		FROM rules
		WHERE lift >= ?
		ORDER BY lift DESC, confidence DESC, support DESC, antecedent
	`, minLift)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.Rule
	for rows.Next() {
		var antecedent, consequent string
		var rule model.Rule
		if err := rows.Scan(&antecedent, &consequent, &rule.Support, &rule.Confidence, &rule.Lift); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rule.Antecedent = model.NewItemset(strings.Split(antecedent, itemSeparator)...)
		rule.Consequent = model.NewItemset(strings.Split(consequent, itemSeparator)...)
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rules: %w", err)
	}
	return rules, nil
}

// GetRuleCount returns the number of stored rules.
func (s *SQLiteStorage) GetRuleCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rules`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rules: %w", err)
	}
	return count, nil
}
