package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Veraticus/market-basket/internal/model"
	"github.com/Veraticus/market-basket/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRulesJSON(t *testing.T) {
	rules := []model.Rule{
		{
			Antecedent: model.NewItemset("bread", "eggs", "milk"),
			Consequent: model.NewItemset("butter", "jam"),
			Support:    0.05, Confidence: 0.5, Lift: 2.5,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeRulesJSON(&buf, rules))

	var decoded []ruleJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, []string{"bread", "eggs", "milk"}, decoded[0].Antecedent)
	assert.Equal(t, []string{"butter", "jam"}, decoded[0].Consequent)
	assert.InDelta(t, 2.5, decoded[0].Lift, 1e-12)
}

func TestWriteMineJSON(t *testing.T) {
	summary := report.Summary{
		ItemsetCounts:     map[int]int{1: 5, 2: 10, 3: 10, 5: 1},
		TotalTransactions: 100,
		RuleCount:         0,
	}

	var buf bytes.Buffer
	require.NoError(t, writeMineJSON(&buf, summary, nil))

	var decoded mineJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 100, decoded.Transactions)
	assert.Equal(t, 0, decoded.RuleCount)
	assert.Equal(t, 1, decoded.FrequentItemsets["5"])
	assert.Empty(t, decoded.Rules)
}
