package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nearak/Journal/internal/models"
)

func datedTrade(id, date string, amount float64) models.Trade {
	result := models.ResultProfit
	if amount < 0 {
		result = models.ResultLoss
	}
	return models.Trade{
		ID:           id,
		Date:         date,
		CurrencyPair: "EURUSD",
		TradeType:    "Swing",
		Position:     models.PositionSell,
		Result:       result,
		Amount:       amount,
	}
}

func TestBuildBalanceCurve_EmptyCollection(t *testing.T) {
	curve := BuildBalanceCurve(nil, 500)

	require.Len(t, curve, 1)
	assert.Equal(t, StartLabel, curve[0].Label)
	assert.InDelta(t, 500, curve[0].Balance, 1e-9)
}

func TestBuildBalanceCurve_Scenario(t *testing.T) {
	trades := []models.Trade{
		datedTrade("a", "2024-01-01", 100),
		datedTrade("b", "2024-01-02", -40),
	}

	curve := BuildBalanceCurve(trades, 1000)

	require.Len(t, curve, 3)
	assert.Equal(t, StartLabel, curve[0].Label)
	assert.InDelta(t, 1000, curve[0].Balance, 1e-9)
	assert.Equal(t, "trade 1", curve[1].Label)
	assert.InDelta(t, 1100, curve[1].Balance, 1e-9)
	assert.Equal(t, "trade 2", curve[2].Label)
	assert.InDelta(t, 1060, curve[2].Balance, 1e-9)
}

func TestBuildBalanceCurve_LengthAlwaysTradesPlusOne(t *testing.T) {
	trades := []models.Trade{
		datedTrade("a", "2024-03-01", 10),
		datedTrade("b", "2024-03-02", 20),
		datedTrade("c", "2024-03-03", -5),
	}

	for n := 0; n <= len(trades); n++ {
		curve := BuildBalanceCurve(trades[:n], 1000)
		assert.Len(t, curve, n+1)
	}
}

func TestBuildBalanceCurve_InputOrderIrrelevantForEndpoints(t *testing.T) {
	shuffled := []models.Trade{
		datedTrade("c", "2024-06-03", -30),
		datedTrade("a", "2024-06-01", 100),
		datedTrade("b", "2024-06-02", 50),
	}

	curve := BuildBalanceCurve(shuffled, 2000)

	require.Len(t, curve, 4)
	assert.InDelta(t, 2000, curve[0].Balance, 1e-9)
	// final balance = capital + sum of all amounts, regardless of input order
	assert.InDelta(t, 2120, curve[3].Balance, 1e-9)
	// internal date sort: 100 lands first, then 50, then -30
	assert.InDelta(t, 2100, curve[1].Balance, 1e-9)
	assert.InDelta(t, 2150, curve[2].Balance, 1e-9)
}

func TestBuildBalanceCurve_SameDateKeepsInsertionOrder(t *testing.T) {
	trades := []models.Trade{
		datedTrade("first", "2024-05-05", 10),
		datedTrade("second", "2024-05-05", -4),
		datedTrade("third", "2024-05-05", 7),
	}

	curve := BuildBalanceCurve(trades, 100)

	require.Len(t, curve, 4)
	assert.InDelta(t, 110, curve[1].Balance, 1e-9)
	assert.InDelta(t, 106, curve[2].Balance, 1e-9)
	assert.InDelta(t, 113, curve[3].Balance, 1e-9)
}

func TestBuildBalanceCurve_DoesNotMutateInput(t *testing.T) {
	trades := []models.Trade{
		datedTrade("b", "2024-02-02", -40),
		datedTrade("a", "2024-02-01", 100),
	}

	BuildBalanceCurve(trades, 1000)

	assert.Equal(t, "b", trades[0].ID)
	assert.Equal(t, "a", trades[1].ID)
}

func TestBuildBalanceCurve_BreakevenAmountsFlowIntoCurve(t *testing.T) {
	trades := []models.Trade{
		{ID: "x", Date: "2024-01-01", CurrencyPair: "EURUSD", TradeType: "News",
			Position: models.PositionBuy, Result: models.ResultBreakeven, Amount: 3},
	}

	curve := BuildBalanceCurve(trades, 100)

	require.Len(t, curve, 2)
	assert.InDelta(t, 103, curve[1].Balance, 1e-9)
}
