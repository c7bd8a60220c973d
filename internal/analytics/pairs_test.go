package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nearak/Journal/internal/models"
)

func TestAggregateByPair_Empty(t *testing.T) {
	result := AggregateByPair(nil)
	assert.Empty(t, result)
}

func TestAggregateByPair_GroupsAndSums(t *testing.T) {
	trades := []models.Trade{
		trade("EURUSD", models.ResultProfit, 100),
		trade("GBPUSD", models.ResultLoss, -30),
		trade("EURUSD", models.ResultLoss, -20),
		trade("EURUSD", models.ResultProfit, 50),
	}

	result := AggregateByPair(trades)

	require.Len(t, result, 2)
	// first-occurrence order
	assert.Equal(t, "EURUSD", result[0].Pair)
	assert.InDelta(t, 150, result[0].Profit, 1e-9)
	assert.InDelta(t, -20, result[0].Loss, 1e-9)
	assert.Equal(t, "GBPUSD", result[1].Pair)
	assert.Zero(t, result[1].Profit)
	assert.InDelta(t, -30, result[1].Loss, 1e-9)
}

func TestAggregateByPair_LossKeepsSign(t *testing.T) {
	trades := []models.Trade{
		trade("USDJPY", models.ResultLoss, -75),
	}

	result := AggregateByPair(trades)

	require.Len(t, result, 1)
	assert.LessOrEqual(t, result[0].Loss, 0.0)
}

func TestAggregateByPair_BreakevenIgnored(t *testing.T) {
	trades := []models.Trade{
		trade("EURUSD", models.ResultBreakeven, 40),
	}

	result := AggregateByPair(trades)

	require.Len(t, result, 1)
	assert.Zero(t, result[0].Profit)
	assert.Zero(t, result[0].Loss)
}

func TestAggregateByPair_CaseSensitiveGrouping(t *testing.T) {
	trades := []models.Trade{
		trade("EURUSD", models.ResultProfit, 10),
		trade("eurusd", models.ResultProfit, 20),
	}

	result := AggregateByPair(trades)

	// grouping key is the raw label, unlike the table filter
	require.Len(t, result, 2)
	assert.Equal(t, "EURUSD", result[0].Pair)
	assert.Equal(t, "eurusd", result[1].Pair)
}
