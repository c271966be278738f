package dca

import (
	"slices"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// HistoryOracle is an in-memory PriceOracle holding one daily price series per symbol.
//
// The zero value is not usable, use NewHistoryOracle.
type HistoryOracle struct {
	prices   map[string]*date.History[decimal.Decimal]
	lookback int
}

// NewHistoryOracle returns an empty oracle that only answers exact-day lookups.
func NewHistoryOracle() *HistoryOracle {
	return &HistoryOracle{prices: make(map[string]*date.History[decimal.Decimal])}
}

// WithLookback lets HistoricalPrice fall back to the last price at most days
// before the requested day. It returns o.
func (o *HistoryOracle) WithLookback(days int) *HistoryOracle {
	o.lookback = max(days, 0)
	return o
}

// SetPrice records the price of symbol on day, replacing any previous value.
func (o *HistoryOracle) SetPrice(day date.Date, symbol string, price decimal.Decimal) {
	h, ok := o.prices[symbol]
	if !ok {
		h = new(date.History[decimal.Decimal])
		o.prices[symbol] = h
	}
	h.Append(day, price)
}

// SetPrices records the same price of symbol on every day of r.
func (o *HistoryOracle) SetPrices(r date.Range, symbol string, price decimal.Decimal) {
	for day := range r.Days() {
		o.SetPrice(day, symbol, price)
	}
}

// Len returns the total number of recorded prices.
func (o *HistoryOracle) Len() int {
	n := 0
	for _, h := range o.prices {
		n += h.Len()
	}
	return n
}

// HistoricalPrice implements PriceOracle.
func (o *HistoryOracle) HistoricalPrice(day date.Date, symbol string) (decimal.Decimal, bool) {
	h, ok := o.prices[symbol]
	if !ok {
		return decimal.Zero, false
	}
	if o.lookback == 0 {
		return h.Get(day)
	}
	on, price, ok := h.EntryAsOf(day)
	if !ok || on.DaysUntil(day) > o.lookback {
		return decimal.Zero, false
	}
	return price, true
}

// LatestPrice implements PriceOracle.
func (o *HistoryOracle) LatestPrice(symbol string) (decimal.Decimal, bool) {
	h, ok := o.prices[symbol]
	if !ok || h.Len() == 0 {
		return decimal.Zero, false
	}
	_, price := h.Latest()
	return price, true
}

// IsSymbolAvailable implements SymbolChecker.
func (o *HistoryOracle) IsSymbolAvailable(symbol string) bool {
	h, ok := o.prices[symbol]
	return ok && h.Len() > 0
}

// AvailableSymbols implements SymbolLister, symbols are sorted.
func (o *HistoryOracle) AvailableSymbols() []string {
	symbols := make([]string, 0, len(o.prices))
	for s, h := range o.prices {
		if h.Len() > 0 {
			symbols = append(symbols, s)
		}
	}
	slices.Sort(symbols)
	return symbols
}

// PriceHistory implements HistoryProvider.
//
// Every day of r gets a price: days without a quote repeat the last known
// price, days before the first quote are left out.
func (o *HistoryOracle) PriceHistory(symbol string, r date.Range) *date.History[decimal.Decimal] {
	filled := new(date.History[decimal.Decimal])
	h, ok := o.prices[symbol]
	if !ok {
		return filled
	}
	for day := range r.Days() {
		if price, ok := h.ValueAsOf(day); ok {
			filled.Append(day, price)
		}
	}
	return filled
}
