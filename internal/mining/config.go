// Package mining implements level-wise frequent-itemset discovery over
// basket transactions and 3→2 association-rule derivation. The miner
// walks levels 1, 2, 3 and 5: five-item candidates are built directly
// from frequent 3-itemsets, so level 4 is never materialized.
package mining

import (
	"fmt"

	"github.com/Veraticus/market-basket/internal/common"
)

// Config holds the mining thresholds. Values are immutable for a run;
// construct a new Config to mine with different thresholds.
type Config struct {
	// MinSupport is the minimum support ratio, in [0,1], an itemset
	// needs at any level to survive.
	MinSupport float64
	// MinConfidence is the minimum rule confidence, in [0,1]. The
	// comparison is non-strict.
	MinConfidence float64
	// MinLift is the lift floor for rules. The comparison is strict:
	// a rule must exceed MinLift to be retained.
	MinLift float64
}

// DefaultConfig returns the default mining thresholds.
func DefaultConfig() Config {
	return Config{
		MinSupport:    0.003,
		MinConfidence: 0.40,
		MinLift:       1.0,
	}
}

// Validate checks the thresholds before mining starts. A MinSupport of
// zero is allowed but makes every itemset frequent, so candidate counts
// grow roughly quadratically in the unique-item vocabulary; datasets
// beyond a few thousand distinct items become impractical at zero.
func (c Config) Validate() error {
	if c.MinSupport < 0 || c.MinSupport > 1 {
		return fmt.Errorf("%w: min_support %v not in [0,1]", common.ErrInvalidThreshold, c.MinSupport)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: min_confidence %v not in [0,1]", common.ErrInvalidThreshold, c.MinConfidence)
	}
	if c.MinLift < 0 {
		return fmt.Errorf("%w: min_lift %v is negative", common.ErrInvalidThreshold, c.MinLift)
	}
	return nil
}
