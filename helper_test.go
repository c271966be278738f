package dca

import (
	"testing"
	"time"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// tolerance accepted when a result goes through a rounded division.
var tolerance = decimal.New(1, -12)

func day(s string) date.Date { return date.MustParse(s) }

// flatOracle returns an oracle with a constant price for every symbol on every day of [from, to].
func flatOracle(from, to string, prices map[string]float64) *HistoryOracle {
	o := NewHistoryOracle()
	r := date.Range{From: day(from), To: day(to)}
	for symbol, price := range prices {
		o.SetPrices(r, symbol, D(price))
	}
	return o
}

// btcEthConfig is a three month plan of 1000 per month split 60/40 between BTC and ETH.
func btcEthConfig() ScenarioConfig {
	return ScenarioConfig{
		Name:               "btc-eth",
		StartDate:          day("2024-01-01"),
		EndDate:            day("2024-03-01"),
		InitialInvestment:  decimal.Zero,
		PeriodicInvestment: D(1000),
		Interval:           Month,
		Frequency:          1,
		CustomScheduleDays: []int{1},
		Allocations:        []AssetAllocation{Allocation("BTC", 0.6), Allocation("ETH", 0.4)},
	}
}

func fixedClock() time.Time { return time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC) }

// countingOracle counts the lookups made on an oracle.
type countingOracle struct {
	PriceOracle
	calls int
}

func (o *countingOracle) HistoricalPrice(on date.Date, symbol string) (decimal.Decimal, bool) {
	o.calls++
	return o.PriceOracle.HistoricalPrice(on, symbol)
}

// mapOracle implements only the mandatory PriceOracle methods.
type mapOracle map[string]decimal.Decimal

func (m mapOracle) key(on date.Date, symbol string) string { return on.String() + "/" + symbol }

func (m mapOracle) HistoricalPrice(on date.Date, symbol string) (decimal.Decimal, bool) {
	p, ok := m[m.key(on, symbol)]
	return p, ok
}

func (m mapOracle) LatestPrice(symbol string) (decimal.Decimal, bool) {
	p, ok := m["latest/"+symbol]
	return p, ok
}

func assertDecimal(t *testing.T, name, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "%s = %s, want %s", name, got, want)
}

func assertNear(t *testing.T, name, want string, got decimal.Decimal) {
	t.Helper()
	diff := decimal.RequireFromString(want).Sub(got).Abs()
	assert.Truef(t, diff.LessThanOrEqual(tolerance), "%s = %s, want %s", name, got, want)
}
