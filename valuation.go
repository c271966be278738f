package dca

import (
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// valuation returns the value of the held positions at the prices of day.
// Allocations without units are not priced.
func (r *run) valuation(day date.Date) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, a := range r.cfg.Allocations {
		p := r.book.get(a.Symbol)
		if !p.units.IsPositive() {
			continue
		}
		price, ok := r.oracle.HistoricalPrice(day, a.Symbol)
		if !ok {
			return decimal.Zero, priceNotFound(a.Symbol, day)
		}
		total = total.Add(p.units.Mul(price))
	}
	return total, nil
}

// snapshot appends the valuation of day to the timeline.
func (r *run) snapshot(day date.Date) error {
	value, err := r.valuation(day)
	if err != nil {
		return err
	}
	r.timeline = append(r.timeline, ValuePoint{Date: day, Value: value})
	return nil
}

// closeTimeline makes the last timeline point the valuation on end,
// replacing a point already on that day.
func (r *run) closeTimeline(end date.Date) error {
	value, err := r.valuation(end)
	if err != nil {
		return err
	}
	if n := len(r.timeline); n > 0 && r.timeline[n-1].Date == end {
		r.timeline[n-1].Value = value
		return nil
	}
	r.timeline = append(r.timeline, ValuePoint{Date: end, Value: value})
	return nil
}

// MaxDrawdown returns the largest decline from a running peak, in percent of that peak.
// It is zero for an empty, flat or increasing series.
func MaxDrawdown(points []ValuePoint) decimal.Decimal {
	peak, worst := decimal.Zero, decimal.Zero
	for _, p := range points {
		if p.Value.GreaterThan(peak) {
			peak = p.Value
			continue
		}
		if peak.IsPositive() {
			if dd := percent(peak.Sub(p.Value), peak); dd.GreaterThan(worst) {
				worst = dd
			}
		}
	}
	return worst
}
