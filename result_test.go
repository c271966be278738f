package dca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkippedDeal(t *testing.T) {
	d := SkippedDeal(day("2024-02-01"), "BTC")
	assert.True(t, d.Skipped)
	assert.False(t, d.IsSuccessful())
	assert.True(t, d.Units.IsZero())
	assert.Equal(t, 0, d.DaysDifference())
	assert.Equal(t, "BTC", d.Symbol)
}

func TestSuccessfulDeals(t *testing.T) {
	bought := DealLog{Date: day("2024-01-02"), TargetDate: day("2024-01-01"), Symbol: "BTC", Units: D(0.5), Price: D(100), SpentAmount: D(50)}
	r := &SimulationResult{Deals: []DealLog{
		bought,
		SkippedDeal(day("2024-01-01"), "ETH"),
		{Date: day("2024-01-01"), TargetDate: day("2024-01-01"), Symbol: "SOL"}, // no units
	}}

	got := r.SuccessfulDeals()
	require.Len(t, got, 1)
	assert.Equal(t, "BTC", got[0].Symbol)
	assert.Equal(t, 1, got[0].DaysDifference())

	assert.Empty(t, (&SimulationResult{}).SuccessfulDeals())
}

func TestBreakdownRowTotalInvestment(t *testing.T) {
	c := btcEthConfig()
	o := flatOracle("2024-01-01", "2024-03-01", map[string]float64{"BTC": 100, "ETH": 10})
	r, err := Simulate(c, o)
	require.NoError(t, err)

	btc, ok := r.Row("BTC")
	require.True(t, ok)
	assertNear(t, "BTC investment", "1800", btc.TotalInvestment())
	assert.True(t, btc.IsBreakEven())

	eth, ok := r.Row("ETH")
	require.True(t, ok)
	assertNear(t, "ETH investment", "1200", eth.TotalInvestment())

	_, ok = r.Row("SOL")
	assert.False(t, ok)

	empty := BreakdownRow{Symbol: "SOL"}
	assert.True(t, empty.TotalInvestment().IsZero())
}
