package dca

import (
	"time"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// DealLog records one purchase of one asset.
type DealLog struct {
	Date        date.Date       `json:"date"`       // execution day
	TargetDate  date.Date       `json:"targetDate"` // scheduled day
	Symbol      string          `json:"symbol"`
	Price       decimal.Decimal `json:"price"` // effective price, slippage included
	Units       decimal.Decimal `json:"units"`
	SpentAmount decimal.Decimal `json:"spentAmount"` // units × price + fee
	Skipped     bool            `json:"skipped"`
}

// SkippedDeal returns the log of a purchase that did not happen.
func SkippedDeal(target date.Date, symbol string) DealLog {
	return DealLog{Date: target, TargetDate: target, Symbol: symbol, Skipped: true}
}

// IsSuccessful reports whether units were actually bought.
func (d DealLog) IsSuccessful() bool { return !d.Skipped && d.Units.IsPositive() }

// DaysDifference returns the number of days between the scheduled and the execution day.
func (d DealLog) DaysDifference() int { return d.TargetDate.DaysUntil(d.Date) }

// BreakdownRow summarizes the final position on one asset.
type BreakdownRow struct {
	Symbol       string          `json:"symbol"`
	TotalUnits   decimal.Decimal `json:"totalUnits"`
	AvgCost      decimal.Decimal `json:"avgCost"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	PnLAbsolute  decimal.Decimal `json:"pnlAbsolute"`
	PnLPercent   decimal.Decimal `json:"pnlPercent"`
}

func (r BreakdownRow) IsProfit() bool    { return r.PnLAbsolute.IsPositive() }
func (r BreakdownRow) IsLoss() bool      { return r.PnLAbsolute.IsNegative() }
func (r BreakdownRow) IsBreakEven() bool { return r.PnLAbsolute.IsZero() }

// TotalInvestment returns the cost basis of the position.
func (r BreakdownRow) TotalInvestment() decimal.Decimal { return r.TotalUnits.Mul(r.AvgCost) }

// ValuePoint is the portfolio value at the end of a day.
type ValuePoint struct {
	Date  date.Date
	Value decimal.Decimal
}

// SimulationResult is the outcome of a simulation.
type SimulationResult struct {
	InvestedTotal       decimal.Decimal `json:"investedTotal"`
	CurrentValue        decimal.Decimal `json:"currentValue"`
	ProfitAbsolute      decimal.Decimal `json:"profitAbsolute"`
	ProfitPercent       decimal.Decimal `json:"profitPercent"`
	MaxDrawdownPercent  decimal.Decimal `json:"maxDrawdownPercent"`
	Deals               []DealLog       `json:"deals"`
	Breakdown           []BreakdownRow  `json:"breakdown"`
	SimulationTimestamp time.Time       `json:"simulationTimestamp"`

	timeline []ValuePoint
}

// Timeline returns the portfolio value after each investment date, the last
// point being the valuation on the end date.
func (r *SimulationResult) Timeline() []ValuePoint { return r.timeline }

// SuccessfulDeals returns the deals that bought units.
func (r *SimulationResult) SuccessfulDeals() []DealLog {
	var deals []DealLog
	for _, d := range r.Deals {
		if d.IsSuccessful() {
			deals = append(deals, d)
		}
	}
	return deals
}

// Row returns the breakdown row of symbol.
func (r *SimulationResult) Row(symbol string) (BreakdownRow, bool) {
	for _, row := range r.Breakdown {
		if row.Symbol == symbol {
			return row, true
		}
	}
	return BreakdownRow{}, false
}
