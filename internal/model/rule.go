package model

import "fmt"

// Rule is an association rule derived from a frequent 5-itemset: a
// 3-item antecedent predicting a 2-item consequent. Support is the
// support ratio of the full 5-itemset; confidence and lift are computed
// against the antecedent and consequent supports at mining time. Rules
// are terminal records consumed only by reporting and persistence.
type Rule struct {
	Antecedent Itemset
	Consequent Itemset
	Support    float64
	Confidence float64
	Lift       float64
}

// String renders the rule in the conventional "A => B" form with its
// three measures.
func (r Rule) String() string {
	return fmt.Sprintf("%s => %s (support=%.4f confidence=%.4f lift=%.4f)",
		r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
}
