package dca

import (
	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// PriceOracle resolves asset prices. It is the only collaborator of the engine.
//
// Implementations must be idempotent: the engine may ask several times for the
// same (date, symbol) pair and does not cache answers itself.
type PriceOracle interface {
	// HistoricalPrice returns the price of symbol on day, ok is false when unknown.
	HistoricalPrice(day date.Date, symbol string) (price decimal.Decimal, ok bool)
	// LatestPrice returns the most recent known price of symbol.
	LatestPrice(symbol string) (price decimal.Decimal, ok bool)
}

// SymbolLister is implemented by oracles able to enumerate their symbols.
type SymbolLister interface {
	AvailableSymbols() []string
}

// SymbolChecker is implemented by oracles with a cheaper availability test than LatestPrice.
type SymbolChecker interface {
	IsSymbolAvailable(symbol string) bool
}

// HistoryProvider is implemented by oracles that can return a price series in one call.
type HistoryProvider interface {
	PriceHistory(symbol string, r date.Range) *date.History[decimal.Decimal]
}

// IsSymbolAvailable reports whether o knows anything about symbol.
// Without a SymbolChecker, a symbol is available when it has a latest price.
func IsSymbolAvailable(o PriceOracle, symbol string) bool {
	if c, ok := o.(SymbolChecker); ok {
		return c.IsSymbolAvailable(symbol)
	}
	_, ok := o.LatestPrice(symbol)
	return ok
}

// AvailableSymbols returns the symbols known by o, or nil if o cannot list them.
func AvailableSymbols(o PriceOracle) []string {
	if l, ok := o.(SymbolLister); ok {
		return l.AvailableSymbols()
	}
	return nil
}

// PriceHistory returns the known prices of symbol over r.
// Without a HistoryProvider, every day of r is queried and missing days are left out.
func PriceHistory(o PriceOracle, symbol string, r date.Range) *date.History[decimal.Decimal] {
	if p, ok := o.(HistoryProvider); ok {
		return p.PriceHistory(symbol, r)
	}
	h := new(date.History[decimal.Decimal])
	for day := range r.Days() {
		if price, ok := o.HistoricalPrice(day, symbol); ok {
			h.Append(day, price)
		}
	}
	return h
}

// CheckSymbols returns a NoPriceDataAvailable error for the first enabled
// allocation whose symbol is unknown to o.
func CheckSymbols(c ScenarioConfig, o PriceOracle) error {
	for _, a := range c.Allocations {
		if a.Enabled && !IsSymbolAvailable(o, a.Symbol) {
			return noPriceData(a.Symbol)
		}
	}
	return nil
}
