package mining

import (
	"testing"

	"github.com/Veraticus/market-basket/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRules_LiftThresholdIsStrict(t *testing.T) {
	// Uniform dataset: every rule has confidence 1.0 and lift exactly 1.0.
	txns := uniformBaskets(10, "a", "b", "c", "d", "e")

	cfg := Config{MinSupport: 0.1, MinConfidence: 0.4, MinLift: 1.0}
	result := mineAll(t, cfg, txns)

	assert.Empty(t, GenerateRules(result, cfg),
		"lift of exactly 1.0 must not pass a 1.0 floor")

	relaxed := cfg
	relaxed.MinLift = 0.9
	assert.Len(t, GenerateRules(result, relaxed), 10,
		"each 5-itemset yields its 10 splits once lift passes")
}

func TestGenerateRules_ConfidenceThresholdIsInclusive(t *testing.T) {
	txns := uniformBaskets(10, "a", "b", "c", "d", "e")

	cfg := Config{MinSupport: 0.1, MinConfidence: 1.0, MinLift: 0.5}
	result := mineAll(t, cfg, txns)

	assert.Len(t, GenerateRules(result, cfg), 10,
		"confidence of exactly 1.0 passes a 1.0 threshold")
}

func TestGenerateRules_HighLiftFloorYieldsNothing(t *testing.T) {
	txns := fixtureBaskets()

	cfg := Config{MinSupport: 0.2, MinConfidence: 0.4, MinLift: 1000}
	result := mineAll(t, cfg, txns)

	assert.Empty(t, GenerateRules(result, cfg), "a valid result, not an error")
}

func TestGenerateRules_BoundedByTenPerFiveSet(t *testing.T) {
	txns := fixtureBaskets()

	cfg := Config{MinSupport: 0.2, MinConfidence: 0, MinLift: 0}
	result := mineAll(t, cfg, txns)

	rules := GenerateRules(result, cfg)
	assert.LessOrEqual(t, len(rules), 10*result.Count(5))
}

func TestGenerateRules_SkipsMissingSubSupports(t *testing.T) {
	// A hand-built result where the 5-itemset survived but one of its
	// 3-subsets was never mined: those splits cannot be scored and are
	// skipped rather than crashing or back-filling.
	five := model.NewItemset("a", "b", "c", "d", "e")
	abc := model.NewItemset("a", "b", "c")
	de := model.NewItemset("d", "e")

	result := &Result{
		TotalTransactions: 100,
		Levels: map[int]Level{
			2: {de.Key(): ItemsetSupport{Set: de, Count: 20, Support: 0.2}},
			3: {abc.Key(): ItemsetSupport{Set: abc, Count: 10, Support: 0.1}},
			5: {five.Key(): ItemsetSupport{Set: five, Count: 5, Support: 0.05}},
		},
	}

	cfg := Config{MinSupport: 0.01, MinConfidence: 0, MinLift: 0}
	rules := GenerateRules(result, cfg)

	require.Len(t, rules, 1, "only the fully scored split survives")
	assert.Equal(t, abc.Key(), rules[0].Antecedent.Key())
	assert.Equal(t, de.Key(), rules[0].Consequent.Key())
	assert.InDelta(t, 0.5, rules[0].Confidence, 1e-12)
	assert.InDelta(t, 2.5, rules[0].Lift, 1e-12)
}

func TestGenerateRules_MeasuresWithinBounds(t *testing.T) {
	txns := fixtureBaskets()

	cfg := Config{MinSupport: 0.2, MinConfidence: 0, MinLift: 0}
	result := mineAll(t, cfg, txns)

	for _, r := range GenerateRules(result, cfg) {
		assert.GreaterOrEqual(t, r.Confidence, 0.0)
		assert.LessOrEqual(t, r.Confidence, 1.0)
		assert.GreaterOrEqual(t, r.Lift, 0.0)

		antecedent := result.Level(3)[r.Antecedent.Key()]
		consequent := result.Level(2)[r.Consequent.Key()]
		assert.LessOrEqual(t, r.Support, antecedent.Support)
		assert.LessOrEqual(t, r.Support, consequent.Support)
	}
}

func TestSortRules_Deterministic(t *testing.T) {
	rules := []model.Rule{
		{Antecedent: model.NewItemset("b", "c", "d"), Consequent: model.NewItemset("e", "f"), Support: 0.1, Confidence: 0.5, Lift: 2.0},
		{Antecedent: model.NewItemset("a", "b", "c"), Consequent: model.NewItemset("d", "e"), Support: 0.1, Confidence: 0.5, Lift: 2.0},
		{Antecedent: model.NewItemset("x", "y", "z"), Consequent: model.NewItemset("v", "w"), Support: 0.2, Confidence: 0.9, Lift: 3.0},
		{Antecedent: model.NewItemset("a", "b", "c"), Consequent: model.NewItemset("d", "e"), Support: 0.1, Confidence: 0.8, Lift: 2.0},
	}

	SortRules(rules)

	assert.InDelta(t, 3.0, rules[0].Lift, 1e-12, "highest lift first")
	assert.InDelta(t, 0.8, rules[1].Confidence, 1e-12, "confidence breaks lift ties")
	assert.Equal(t, model.NewItemset("a", "b", "c").Key(), rules[2].Antecedent.Key(),
		"antecedent order breaks remaining ties")
	assert.Equal(t, model.NewItemset("b", "c", "d").Key(), rules[3].Antecedent.Key())
}
