package storage

import (
	"context"
	"testing"

	"github.com/Veraticus/market-basket/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRules() []model.Rule {
	return []model.Rule{
		{
			Antecedent: model.NewItemset("bread", "eggs", "milk"),
			Consequent: model.NewItemset("butter", "jam"),
			Support:    0.05, Confidence: 0.5, Lift: 2.5,
		},
		{
			Antecedent: model.NewItemset("coffee", "cream", "sugar"),
			Consequent: model.NewItemset("biscuits", "tea"),
			Support:    0.02, Confidence: 0.8, Lift: 4.0,
		},
	}
}

func TestSaveAndGetRules(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRules(ctx, createTestRules()))

	rules, err := store.GetRules(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.InDelta(t, 4.0, rules[0].Lift, 1e-12, "best lift first")
	assert.Equal(t, model.NewItemset("coffee", "cream", "sugar").Key(), rules[0].Antecedent.Key())
	assert.Equal(t, model.NewItemset("biscuits", "tea").Key(), rules[0].Consequent.Key())

	count, err := store.GetRuleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveRules_UpsertsOnRemine(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	rules := createTestRules()
	require.NoError(t, store.SaveRules(ctx, rules))

	// Re-mining with different thresholds updates measures in place.
	rules[0].Lift = 9.0
	require.NoError(t, store.SaveRules(ctx, rules))

	count, err := store.GetRuleCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "same antecedent/consequent pair must not duplicate")

	got, err := store.GetRules(ctx, 0)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, got[0].Lift, 1e-12)
}

func TestGetRules_LiftFilter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveRules(ctx, createTestRules()))

	rules, err := store.GetRules(ctx, 3.0)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.InDelta(t, 4.0, rules[0].Lift, 1e-12)
}

func TestSaveRules_Validation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		rules []model.Rule
	}{
		{name: "nil slice", rules: nil},
		{name: "empty slice", rules: []model.Rule{}},
		{
			name: "empty consequent",
			rules: []model.Rule{{
				Antecedent: model.NewItemset("a", "b", "c"),
				Confidence: 0.5, Lift: 1.0,
			}},
		},
		{
			name: "confidence out of range",
			rules: []model.Rule{{
				Antecedent: model.NewItemset("a", "b", "c"),
				Consequent: model.NewItemset("d", "e"),
				Confidence: 1.5, Lift: 1.0,
			}},
		},
		{
			name: "negative lift",
			rules: []model.Rule{{
				Antecedent: model.NewItemset("a", "b", "c"),
				Consequent: model.NewItemset("d", "e"),
				Confidence: 0.5, Lift: -1,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, store.SaveRules(ctx, tt.rules))
		})
	}
}
