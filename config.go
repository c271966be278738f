package dca

import (
	"github.com/etnz/dca/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScenarioConfig is the complete input of a simulation.
//
// It is passed by value to Simulate and never modified by it.
type ScenarioConfig struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name,omitempty"`
	Currency string    `json:"currency,omitempty"` // reporting currency, display only

	StartDate          date.Date       `json:"startDate"`
	EndDate            date.Date       `json:"endDate"`
	InitialInvestment  decimal.Decimal `json:"initialInvestment"`
	PeriodicInvestment decimal.Decimal `json:"periodicInvestment"`

	Interval           IntervalUnit `json:"intervalUnit"`
	Frequency          int          `json:"frequency"`
	CustomScheduleDays []int        `json:"customScheduleDays,omitempty"`

	Slippage decimal.Decimal `json:"slippage"` // in [0, 1)
	FeeRate  decimal.Decimal `json:"feeRate"`  // in [0, 1)

	Allocations []AssetAllocation `json:"allocations"`
}

// Validate checks the configuration and returns the first violated constraint as an *Error.
func (c ScenarioConfig) Validate() error {
	if c.InitialInvestment.IsNegative() {
		return invalidConfiguration("initial investment %s is negative", c.InitialInvestment)
	}
	if c.PeriodicInvestment.IsNegative() {
		return invalidConfiguration("periodic investment %s is negative", c.PeriodicInvestment)
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return invalidConfiguration("start and end dates are required")
	}
	if !c.StartDate.Before(c.EndDate) {
		return invalidConfiguration("start date %s is not before end date %s", c.StartDate, c.EndDate)
	}
	if c.Slippage.IsNegative() || c.Slippage.GreaterThanOrEqual(one) {
		return invalidConfiguration("slippage %s not in [0, 1)", c.Slippage)
	}
	if c.FeeRate.IsNegative() || c.FeeRate.GreaterThanOrEqual(one) {
		return invalidConfiguration("fee rate %s not in [0, 1)", c.FeeRate)
	}
	if !c.Interval.valid() {
		return invalidConfiguration("unknown interval unit %s", c.Interval)
	}
	if c.Frequency <= 0 {
		return invalidConfiguration("frequency %d must be positive", c.Frequency)
	}
	if c.Interval.hasCustomDays() {
		if len(c.CustomScheduleDays) != c.Frequency {
			return invalidConfiguration("%d custom schedule days for a frequency of %d per %s", len(c.CustomScheduleDays), c.Frequency, c.Interval)
		}
		min, max := c.Interval.customDayRange()
		for _, d := range c.CustomScheduleDays {
			if d < min || d > max {
				return &Error{Kind: BuyDayOutOfRange, Value: d, Min: min, Max: max}
			}
		}
	}

	if len(c.Allocations) == 0 {
		return ErrEmptyAllocations
	}
	seen := make(map[string]bool, len(c.Allocations))
	for _, a := range c.Allocations {
		switch {
		case a.Symbol == "":
			return invalidAllocation(a, "missing symbol")
		case a.Weight.IsNegative():
			return invalidAllocation(a, "negative weight")
		case seen[a.Symbol]:
			return invalidAllocation(a, "symbol allocated twice")
		}
		seen[a.Symbol] = true
	}

	if sum := c.enabledWeightPercent(); sum.Sub(hundred).Abs().GreaterThan(weightTolerance) {
		return &Error{Kind: InvalidWeightsSum, Actual: sum, Expected: hundred}
	}
	return nil
}
