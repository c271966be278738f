package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/dca"
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// Simulation is the view of a simulation result, every amount already formatted.
type Simulation struct {
	Name     string
	From, To date.Date
	Dates    int // scheduled investment dates, with or without deals

	Invested      string
	Value         string
	Profit        string
	ProfitPercent string
	Drawdown      string

	Rows  []Row
	Deals []Deal
}

// Row is the view of one asset breakdown.
type Row struct {
	Symbol     string
	Units      string
	AvgCost    string
	Price      string
	Value      string
	PnL        string
	PnLPercent string
}

// Deal is the view of one purchase.
type Deal struct {
	Date   date.Date
	Symbol string
	Price  string
	Units  string
	Spent  string
}

// NewSimulation prepares the view of r, the result of running c.
func NewSimulation(c dca.ScenarioConfig, r *dca.SimulationResult) *Simulation {
	cur := c.Currency
	if cur == "" {
		cur = dca.DefaultCurrency
	}
	s := &Simulation{
		Name:          c.Name,
		From:          c.StartDate,
		To:            c.EndDate,
		Invested:      formatMoney(r.InvestedTotal, cur),
		Value:         formatMoney(r.CurrentValue, cur),
		Profit:        formatMoney(r.ProfitAbsolute, cur),
		ProfitPercent: formatPercent(r.ProfitPercent),
		Drawdown:      formatPercent(r.MaxDrawdownPercent),
	}
	if dates, err := dca.Schedule(c); err == nil {
		s.Dates = len(dates)
	}
	for _, d := range r.Deals {
		s.Deals = append(s.Deals, Deal{
			Date:   d.Date,
			Symbol: d.Symbol,
			Price:  formatMoney(d.Price, cur),
			Units:  formatUnits(d.Units),
			Spent:  formatMoney(d.SpentAmount, cur),
		})
	}
	for _, row := range r.Breakdown {
		s.Rows = append(s.Rows, Row{
			Symbol:     row.Symbol,
			Units:      formatUnits(row.TotalUnits),
			AvgCost:    formatMoney(row.AvgCost, cur),
			Price:      formatMoney(row.CurrentPrice, cur),
			Value:      formatMoney(row.CurrentValue, cur),
			PnL:        formatMoney(row.PnLAbsolute, cur),
			PnLPercent: formatPercent(row.PnLPercent),
		})
	}
	return s
}

// formatMoney formats amount with the symbol, separators and fraction digits of currency.
// Unknown currencies are printed as "1234.56 XYZ".
func formatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return amount.StringFixed(2) + " " + currency
	}
	minor := amount.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func formatPercent(p decimal.Decimal) string { return p.StringFixed(2) + "%" }

// formatUnits keeps 8 decimals, enough for satoshis.
func formatUnits(u decimal.Decimal) string { return u.Round(8).String() }
