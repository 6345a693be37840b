package report

import (
	"context"
	"testing"

	"github.com/Veraticus/market-basket/internal/mining"
	"github.com/Veraticus/market-basket/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules() []model.Rule {
	return []model.Rule{
		{
			Antecedent: model.NewItemset("bread", "eggs", "milk"),
			Consequent: model.NewItemset("butter", "jam"),
			Support:    0.05, Confidence: 0.5, Lift: 2.5,
		},
		{
			Antecedent: model.NewItemset("bread", "eggs", "tea"),
			Consequent: model.NewItemset("butter", "scones"),
			Support:    0.03, Confidence: 0.7, Lift: 1.5,
		},
		{
			Antecedent: model.NewItemset("coffee", "cream", "sugar"),
			Consequent: model.NewItemset("butter", "jam"),
			Support:    0.04, Confidence: 0.6, Lift: 3.0,
		},
	}
}

func testResult(t *testing.T) *mining.Result {
	t.Helper()
	txns := []model.Transaction{
		{ID: 0, Items: []string{"a", "b"}},
		{ID: 1, Items: []string{"a", "b"}},
	}
	cfg := mining.Config{MinSupport: 0.5, MinConfidence: 0.4, MinLift: 1.0}
	result, err := mining.NewGenerator(cfg).Mine(context.Background(), txns)
	require.NoError(t, err)
	return result
}

func TestSummarize(t *testing.T) {
	result := testResult(t)
	rules := testRules()

	s := Summarize(result, rules)

	assert.Equal(t, 2, s.TotalTransactions)
	assert.Equal(t, 3, s.RuleCount)
	assert.Equal(t, 2, s.ItemsetCounts[1])
	assert.Equal(t, 1, s.ItemsetCounts[2])
	assert.Equal(t, 0, s.ItemsetCounts[5])

	assert.InDelta(t, 0.03, s.Support.Min, 1e-12)
	assert.InDelta(t, 0.05, s.Support.Max, 1e-12)
	assert.InDelta(t, 0.04, s.Support.Mean, 1e-12)

	assert.InDelta(t, 0.5, s.Confidence.Min, 1e-12)
	assert.InDelta(t, 0.7, s.Confidence.Max, 1e-12)
	assert.InDelta(t, 0.6, s.Confidence.Mean, 1e-12)

	assert.InDelta(t, 1.5, s.Lift.Min, 1e-12)
	assert.InDelta(t, 3.0, s.Lift.Max, 1e-12)
	assert.InDelta(t, (2.5+1.5+3.0)/3, s.Lift.Mean, 1e-12)

	assert.Equal(t, 2, s.AntecedentFrequency["bread"])
	assert.Equal(t, 2, s.AntecedentFrequency["eggs"])
	assert.Equal(t, 1, s.AntecedentFrequency["milk"])
	assert.Equal(t, 3, s.ConsequentFrequency["butter"])
	assert.Equal(t, 2, s.ConsequentFrequency["jam"])
}

func TestSummarize_NoRules(t *testing.T) {
	result := testResult(t)

	s := Summarize(result, nil)

	assert.Equal(t, 0, s.RuleCount)
	assert.Equal(t, Stat{}, s.Support)
	assert.Empty(t, s.AntecedentFrequency)
}

func TestBestByLift(t *testing.T) {
	rules := testRules()

	best, ok := BestByLift(rules)
	require.True(t, ok)
	assert.InDelta(t, 3.0, best.Lift, 1e-12)
	assert.Equal(t, model.NewItemset("coffee", "cream", "sugar").Key(), best.Antecedent.Key())

	_, ok = BestByLift(nil)
	assert.False(t, ok)
}

func TestBestByLift_TieBreaks(t *testing.T) {
	rules := []model.Rule{
		{Antecedent: model.NewItemset("b", "c", "d"), Consequent: model.NewItemset("x", "y"), Support: 0.1, Confidence: 0.5, Lift: 2.0},
		{Antecedent: model.NewItemset("a", "b", "c"), Consequent: model.NewItemset("x", "y"), Support: 0.1, Confidence: 0.5, Lift: 2.0},
	}

	best, ok := BestByLift(rules)
	require.True(t, ok)
	assert.Equal(t, model.NewItemset("a", "b", "c").Key(), best.Antecedent.Key(),
		"lexicographic antecedent breaks full ties")
}

func TestTopItems(t *testing.T) {
	freq := map[string]int{"milk": 3, "bread": 3, "tea": 1, "jam": 2}

	top := TopItems(freq, 3)
	require.Len(t, top, 3)
	assert.Equal(t, ItemCount{Item: "bread", Count: 3}, top[0], "alphabetical on count ties")
	assert.Equal(t, ItemCount{Item: "milk", Count: 3}, top[1])
	assert.Equal(t, ItemCount{Item: "jam", Count: 2}, top[2])

	all := TopItems(freq, 0)
	assert.Len(t, all, 4)
}

func TestFormatter_Smoke(t *testing.T) {
	result := testResult(t)
	rules := testRules()
	f := NewFormatter()

	summary := f.FormatSummary(Summarize(result, rules))
	assert.Contains(t, summary, "Rules retained")
	assert.Contains(t, summary, "Most predictive items")

	table := f.FormatRules(rules, 2)
	assert.Contains(t, table, "and 1 more")

	assert.Contains(t, f.FormatRules(nil, 0), "0 rules found")
	assert.Contains(t, f.FormatBestRule(rules), "lift=3.0000")
}
