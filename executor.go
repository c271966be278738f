package dca

import (
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// position accumulates the purchases of one asset.
type position struct {
	units    decimal.Decimal
	invested decimal.Decimal
}

// book holds the running totals of a simulation.
type book struct {
	positions map[string]*position
	invested  decimal.Decimal
	deals     []DealLog
}

func newBook() *book {
	return &book{positions: make(map[string]*position), deals: []DealLog{}}
}

// get returns the position on symbol, zero if nothing was bought yet.
func (b *book) get(symbol string) position {
	if p, ok := b.positions[symbol]; ok {
		return *p
	}
	return position{}
}

func (b *book) record(d DealLog) {
	p, ok := b.positions[d.Symbol]
	if !ok {
		p = &position{}
		b.positions[d.Symbol] = p
	}
	p.units = p.units.Add(d.Units)
	p.invested = p.invested.Add(d.SpentAmount)
	b.invested = b.invested.Add(d.SpentAmount)
	b.deals = append(b.deals, d)
}

// invest splits amount across the funded allocations at the prices of day.
// A missing price aborts with PriceNotFound, purchases already recorded for
// day are then meaningless since the whole simulation fails.
func (r *run) invest(amount decimal.Decimal, day date.Date) error {
	if !amount.IsPositive() {
		return nil
	}
	markup := one.Add(r.cfg.Slippage)
	for _, a := range r.cfg.Allocations {
		if !a.funded() {
			continue
		}
		contribution := amount.Mul(a.Weight)
		price, ok := r.oracle.HistoricalPrice(day, a.Symbol)
		if !ok {
			return priceNotFound(a.Symbol, day)
		}
		effective := price.Mul(markup)
		if !effective.IsPositive() {
			return simulationFailed("non positive price %s for %q on %s", price, a.Symbol, day)
		}
		fee := contribution.Mul(r.cfg.FeeRate)
		net := contribution.Sub(fee)
		if !net.IsPositive() {
			continue
		}
		units := net.DivRound(effective, precision)
		deal := DealLog{
			Date:        day,
			TargetDate:  day,
			Symbol:      a.Symbol,
			Price:       effective,
			Units:       units,
			SpentAmount: units.Mul(effective).Add(fee),
		}
		r.book.record(deal)
		r.log.Debug("deal",
			zap.Stringer("date", day),
			zap.String("symbol", a.Symbol),
			zap.Stringer("price", effective),
			zap.Stringer("units", units),
			zap.Stringer("spent", deal.SpentAmount),
		)
	}
	return nil
}

// contributions invests the initial and periodic amounts over dates.
//
// The initial investment replaces the periodic one on the first date: a
// periodic contribution is added on that date only when there is no initial
// investment.
func (r *run) contributions(dates []date.Date, after func(date.Date) error) error {
	for i, day := range dates {
		if i == 0 {
			if err := r.invest(r.cfg.InitialInvestment, day); err != nil {
				return err
			}
			if r.cfg.InitialInvestment.IsZero() {
				if err := r.invest(r.cfg.PeriodicInvestment, day); err != nil {
					return err
				}
			}
		} else if err := r.invest(r.cfg.PeriodicInvestment, day); err != nil {
			return err
		}
		if err := after(day); err != nil {
			return err
		}
	}
	return nil
}
