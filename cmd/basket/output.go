package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/market-basket/internal/mining"
	"github.com/Veraticus/market-basket/internal/model"
	"github.com/Veraticus/market-basket/internal/report"
)

type ruleJSON struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`
	Support    float64  `json:"support"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

type statJSON struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

type mineJSON struct {
	FrequentItemsets map[string]int `json:"frequent_itemsets"`
	Stats            struct {
		Support    statJSON `json:"support"`
		Confidence statJSON `json:"confidence"`
		Lift       statJSON `json:"lift"`
	} `json:"rule_stats"`
	Rules        []ruleJSON `json:"rules"`
	Transactions int        `json:"transactions"`
	RuleCount    int        `json:"rule_count"`
}

func toRuleJSON(rules []model.Rule) []ruleJSON {
	out := make([]ruleJSON, len(rules))
	for i, r := range rules {
		out[i] = ruleJSON{
			Antecedent: r.Antecedent.Items(),
			Consequent: r.Consequent.Items(),
			Support:    r.Support,
			Confidence: r.Confidence,
			Lift:       r.Lift,
		}
	}
	return out
}

func writeMineJSON(w io.Writer, summary report.Summary, rules []model.Rule) error {
	out := mineJSON{
		FrequentItemsets: make(map[string]int, len(summary.ItemsetCounts)),
		Rules:            toRuleJSON(rules),
		Transactions:     summary.TotalTransactions,
		RuleCount:        summary.RuleCount,
	}
	for _, k := range mining.MinedLevels {
		out.FrequentItemsets[fmt.Sprintf("%d", k)] = summary.ItemsetCounts[k]
	}
	out.Stats.Support = statJSON(summary.Support)
	out.Stats.Confidence = statJSON(summary.Confidence)
	out.Stats.Lift = statJSON(summary.Lift)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeRulesJSON(w io.Writer, rules []model.Rule) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRuleJSON(rules))
}
