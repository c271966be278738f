// Package dca simulates Dollar-Cost-Averaging investment plans.
//
// A ScenarioConfig describes the plan: a date range, an optional initial lump
// sum, a periodic contribution, its schedule, execution costs (slippage and
// fees), and how every contribution is split across assets.
//
// Simulate replays the plan against a PriceOracle:
//
//	c := dca.ScenarioConfig{
//		StartDate:          date.MustParse("2024-01-01"),
//		EndDate:            date.MustParse("2024-03-01"),
//		PeriodicInvestment: dca.D(1000),
//		Interval:           dca.Month,
//		Frequency:          1,
//		CustomScheduleDays: []int{1},
//		Allocations:        []dca.AssetAllocation{dca.Allocation("BTC", 0.6), dca.Allocation("ETH", 0.4)},
//	}
//	result, err := dca.Simulate(c, oracle)
//
// The result reports the total invested, the final value, the profit, the
// maximum drawdown, every deal and a per asset breakdown. All amounts are
// decimal.Decimal and are encoded in JSON as strings.
//
// Simulations never return partial results: a missing price anywhere aborts
// with an *Error identifying the symbol and the day.
package dca
