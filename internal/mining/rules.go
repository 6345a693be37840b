package mining

import (
	"log/slog"
	"sort"

	"github.com/Veraticus/market-basket/internal/model"
)

// GenerateRules splits each frequent 5-itemset into its ten 3-antecedent
// / 2-consequent partitions and scores each against the thresholds.
//
// The antecedent and consequent supports come from the mined level-3 and
// level-2 maps. The join-based candidate generation can leave a subset
// unmined even when its true support clears the threshold; such splits
// cannot be scored and are skipped with a debug log rather than
// back-filled, so the retained rule set matches what the mined levels
// can actually justify.
func GenerateRules(result *Result, cfg Config) []model.Rule {
	fiveSets := result.Level(5).Itemsets()
	threes := result.Level(3)
	twos := result.Level(2)

	var rules []model.Rule
	skipped := 0
	for _, parent := range fiveSets {
		for _, antecedent := range parent.Set.Subsets(3) {
			consequent := parent.Set.Difference(antecedent)

			antRec, ok := threes[antecedent.Key()]
			if !ok {
				skipped++
				slog.Debug("Skipping rule split with unmined antecedent support",
					"antecedent", antecedent.String(), "parent", parent.Set.String())
				continue
			}
			conRec, ok := twos[consequent.Key()]
			if !ok {
				skipped++
				slog.Debug("Skipping rule split with unmined consequent support",
					"consequent", consequent.String(), "parent", parent.Set.String())
				continue
			}

			confidence := parent.Support / antRec.Support
			lift := parent.Support / (antRec.Support * conRec.Support)

			// Confidence is inclusive; lift must strictly exceed its floor.
			if confidence >= cfg.MinConfidence && lift > cfg.MinLift {
				rules = append(rules, model.Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    parent.Support,
					Confidence: confidence,
					Lift:       lift,
				})
			}
		}
	}

	if skipped > 0 {
		slog.Debug("Rule splits skipped for missing sub-supports", "count", skipped)
	}
	slog.Info("Generated rules",
		"frequent_5_itemsets", len(fiveSets),
		"rules", len(rules),
		"min_confidence", cfg.MinConfidence,
		"min_lift", cfg.MinLift)
	return rules
}

// SortRules orders rules for display: lift descending, then confidence,
// then support, then lexicographically by antecedent items so equal-score
// rules always print in the same order.
func SortRules(rules []model.Rule) {
	sort.Slice(rules, func(i, j int) bool {
		a, b := rules[i], rules[j]
		if a.Lift != b.Lift {
			return a.Lift > b.Lift
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Support != b.Support {
			return a.Support > b.Support
		}
		if ak, bk := a.Antecedent.Key(), b.Antecedent.Key(); ak != bk {
			return ak < bk
		}
		return a.Consequent.Key() < b.Consequent.Key()
	})
}
