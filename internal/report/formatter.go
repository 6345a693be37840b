package report

import (
	"fmt"
	"strings"

	"github.com/Veraticus/market-basket/internal/cli"
	"github.com/Veraticus/market-basket/internal/dataset"
	"github.com/Veraticus/market-basket/internal/mining"
	"github.com/Veraticus/market-basket/internal/model"
)

// Formatter renders mining output for terminal display.
type Formatter struct {
	// TopN bounds the item-frequency rankings. Zero means show all.
	TopN int
}

// NewFormatter creates a formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{TopN: 5}
}

// FormatSummary renders the aggregate view of a mining run.
func (f *Formatter) FormatSummary(s Summary) string {
	var sections []string

	sections = append(sections, cli.FormatTitle("Mining Summary"))

	var counts []string
	counts = append(counts, fmt.Sprintf("Transactions scanned: %d", s.TotalTransactions))
	for _, k := range mining.MinedLevels {
		counts = append(counts, fmt.Sprintf("Frequent %d-itemsets:  %d", k, s.ItemsetCounts[k]))
	}
	counts = append(counts, fmt.Sprintf("Rules retained:       %d", s.RuleCount))
	sections = append(sections, strings.Join(counts, "\n"))

	if s.RuleCount > 0 {
		stats := strings.Join([]string{
			cli.BoldStyle.Render("Rule statistics"),
			formatStatRow("support", s.Support),
			formatStatRow("confidence", s.Confidence),
			formatStatRow("lift", s.Lift),
		}, "\n")
		sections = append(sections, stats)

		if ranking := f.formatItemRanking("Most predictive items (antecedents)", s.AntecedentFrequency); ranking != "" {
			sections = append(sections, ranking)
		}
		if ranking := f.formatItemRanking("Most predicted items (consequents)", s.ConsequentFrequency); ranking != "" {
			sections = append(sections, ranking)
		}
	}

	return strings.Join(sections, "\n\n")
}

// FormatRules renders rules one per line, best first. Pass limit <= 0
// for all rules.
func (f *Formatter) FormatRules(rules []model.Rule, limit int) string {
	if len(rules) == 0 {
		return cli.FormatWarning("0 rules found")
	}

	shown := rules
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	lines := make([]string, 0, len(shown)+2)
	lines = append(lines, cli.TableHeaderStyle.Render(fmt.Sprintf(
		"%-40s %10s %12s %8s", "rule", "support", "confidence", "lift")))
	for _, r := range shown {
		arrow := r.Antecedent.String() + " => " + r.Consequent.String()
		lines = append(lines, cli.TableCellStyle.Render(fmt.Sprintf(
			"%-40s %10.4f %12.4f %8.4f", arrow, r.Support, r.Confidence, r.Lift)))
	}
	if len(shown) < len(rules) {
		lines = append(lines, cli.SubtleStyle.Render(fmt.Sprintf(
			"... and %d more", len(rules)-len(shown))))
	}
	return strings.Join(lines, "\n")
}

// FormatBestRule renders the headline rule.
func (f *Formatter) FormatBestRule(rules []model.Rule) string {
	best, ok := BestByLift(rules)
	if !ok {
		return cli.SubtleStyle.Render("no rules to rank")
	}
	return cli.FormatSuccess("Best rule by lift: " + best.String())
}

// FormatDatasetStats renders load-time diagnostics for a dataset.
func (f *Formatter) FormatDatasetStats(set *dataset.TransactionSet) string {
	stats := set.SizeStats()
	lines := []string{
		cli.FormatTitle("Dataset"),
		fmt.Sprintf("Transactions:    %d", set.TotalTransactionCount()),
		fmt.Sprintf("Unique items:    %d", set.UniqueItemCount()),
		fmt.Sprintf("Items per basket: min=%d max=%d mean=%.2f", stats.Min, stats.Max, stats.Mean),
	}
	if set.MalformedLines > 0 {
		lines = append(lines, cli.FormatWarning(fmt.Sprintf(
			"Malformed lines dropped: %d", set.MalformedLines)))
	}
	return strings.Join(lines, "\n")
}

func formatStatRow(name string, stat Stat) string {
	return fmt.Sprintf("  %-11s min=%.4f max=%.4f mean=%.4f", name, stat.Min, stat.Max, stat.Mean)
}

func (f *Formatter) formatItemRanking(title string, freq map[string]int) string {
	top := TopItems(freq, f.TopN)
	if len(top) == 0 {
		return ""
	}
	lines := make([]string, 0, len(top)+1)
	lines = append(lines, cli.BoldStyle.Render(title))
	for i, ic := range top {
		lines = append(lines, fmt.Sprintf("  %d. %-20s %d rules", i+1, ic.Item, ic.Count))
	}
	return strings.Join(lines, "\n")
}
