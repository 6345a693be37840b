// Package report aggregates mining output into summary statistics and
// renders it for the terminal. Everything here is read-only over the
// rule set and mining result.
package report

import (
	"sort"

	"github.com/Veraticus/market-basket/internal/mining"
	"github.com/Veraticus/market-basket/internal/model"
)

// Stat holds min/max/mean for one rule measure.
type Stat struct {
	Min  float64
	Max  float64
	Mean float64
}

// ItemCount ranks one item by how many rules it appears in.
type ItemCount struct {
	Item  string
	Count int
}

// Summary is the aggregate view of a mining run.
type Summary struct {
	// AntecedentFrequency counts, per item, the rules whose antecedent
	// contains it ("most predictive" items).
	AntecedentFrequency map[string]int
	// ConsequentFrequency counts, per item, the rules whose consequent
	// contains it ("most predicted" items).
	ConsequentFrequency map[string]int
	// ItemsetCounts holds the number of frequent itemsets per mined
	// level (1, 2, 3, 5).
	ItemsetCounts map[int]int

	Support    Stat
	Confidence Stat
	Lift       Stat

	TotalTransactions int
	RuleCount         int
}

// Summarize computes the aggregate statistics for a rule set and its
// originating mining result.
func Summarize(result *mining.Result, rules []model.Rule) Summary {
	s := Summary{
		AntecedentFrequency: make(map[string]int),
		ConsequentFrequency: make(map[string]int),
		ItemsetCounts:       make(map[int]int, len(mining.MinedLevels)),
		TotalTransactions:   result.TotalTransactions,
		RuleCount:           len(rules),
	}
	for _, k := range mining.MinedLevels {
		s.ItemsetCounts[k] = result.Count(k)
	}

	if len(rules) == 0 {
		return s
	}

	supports := make([]float64, len(rules))
	confidences := make([]float64, len(rules))
	lifts := make([]float64, len(rules))
	for i, rule := range rules {
		supports[i] = rule.Support
		confidences[i] = rule.Confidence
		lifts[i] = rule.Lift
		for _, item := range rule.Antecedent.Items() {
			s.AntecedentFrequency[item]++
		}
		for _, item := range rule.Consequent.Items() {
			s.ConsequentFrequency[item]++
		}
	}
	s.Support = newStat(supports)
	s.Confidence = newStat(confidences)
	s.Lift = newStat(lifts)
	return s
}

func newStat(values []float64) Stat {
	stat := Stat{Min: values[0], Max: values[0]}
	total := 0.0
	for _, v := range values {
		total += v
		if v < stat.Min {
			stat.Min = v
		}
		if v > stat.Max {
			stat.Max = v
		}
	}
	stat.Mean = total / float64(len(values))
	return stat
}

// BestByLift returns the highest-lift rule, breaking ties by confidence,
// then support, then lexicographic antecedent. The second return is
// false when the rule set is empty.
func BestByLift(rules []model.Rule) (model.Rule, bool) {
	if len(rules) == 0 {
		return model.Rule{}, false
	}
	best := rules[0]
	for _, r := range rules[1:] {
		if betterByLift(r, best) {
			best = r
		}
	}
	return best, true
}

func betterByLift(a, b model.Rule) bool {
	if a.Lift != b.Lift {
		return a.Lift > b.Lift
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.Support != b.Support {
		return a.Support > b.Support
	}
	return a.Antecedent.Key() < b.Antecedent.Key()
}

// TopItems returns the n highest-count items from a frequency map,
// breaking count ties alphabetically. Pass n <= 0 for all items.
func TopItems(freq map[string]int, n int) []ItemCount {
	out := make([]ItemCount, 0, len(freq))
	for item, count := range freq {
		out = append(out, ItemCount{Item: item, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Item < out[j].Item
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
