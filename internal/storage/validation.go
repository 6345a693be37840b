package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/market-basket/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidRule        = errors.New("invalid rule")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransactions validates a slice of transactions.
func validateTransactions(transactions []model.Transaction) error {
	if transactions == nil {
		return fmt.Errorf("%w: transactions", ErrNilParameter)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}
	for i, txn := range transactions {
		if len(txn.Items) == 0 {
			return fmt.Errorf("%w: transaction %d has no items", ErrInvalidTransaction, i)
		}
		for _, item := range txn.Items {
			if strings.TrimSpace(item) == "" {
				return fmt.Errorf("%w: transaction %d has an empty item", ErrInvalidTransaction, i)
			}
			if strings.Contains(item, ",") {
				return fmt.Errorf("%w: transaction %d item %q contains a delimiter", ErrInvalidTransaction, i, item)
			}
		}
	}
	return nil
}

// validateRules validates a slice of rules.
func validateRules(rules []model.Rule) error {
	if rules == nil {
		return fmt.Errorf("%w: rules", ErrNilParameter)
	}
	if len(rules) == 0 {
		return fmt.Errorf("%w: rules", ErrEmptySlice)
	}
	for i, rule := range rules {
		if rule.Antecedent.Len() == 0 || rule.Consequent.Len() == 0 {
			return fmt.Errorf("%w: rule %d has an empty side", ErrInvalidRule, i)
		}
		if rule.Confidence < 0 || rule.Confidence > 1 {
			return fmt.Errorf("%w: rule %d confidence %v not in [0,1]", ErrInvalidRule, i, rule.Confidence)
		}
		if rule.Support < 0 || rule.Support > 1 {
			return fmt.Errorf("%w: rule %d support %v not in [0,1]", ErrInvalidRule, i, rule.Support)
		}
		if rule.Lift < 0 {
			return fmt.Errorf("%w: rule %d lift %v is negative", ErrInvalidRule, i, rule.Lift)
		}
	}
	return nil
}
