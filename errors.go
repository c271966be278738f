package dca

import (
	"fmt"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
)

// ErrorKind tags a simulation failure.
type ErrorKind int

const (
	InvalidConfiguration ErrorKind = iota + 1
	EmptyAllocations
	InvalidWeightsSum
	InvalidAllocation
	BuyDayOutOfRange
	NoInvestmentDates
	PriceNotFound
	NoPriceDataAvailable
	SimulationFailed
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidConfiguration:
		return "invalid configuration"
	case EmptyAllocations:
		return "empty allocations"
	case InvalidWeightsSum:
		return "invalid weights sum"
	case InvalidAllocation:
		return "invalid allocation"
	case BuyDayOutOfRange:
		return "buy day out of range"
	case NoInvestmentDates:
		return "no investment dates"
	case PriceNotFound:
		return "price not found"
	case NoPriceDataAvailable:
		return "no price data available"
	case SimulationFailed:
		return "simulation failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error returned by every failing step of a simulation.
//
// Only the fields relevant to Kind are set:
//   - InvalidConfiguration, SimulationFailed: Reason
//   - InvalidWeightsSum: Actual and Expected, in percent
//   - InvalidAllocation: Symbol, Actual (the weight) and Reason
//   - BuyDayOutOfRange: Value, Min and Max
//   - PriceNotFound: Symbol and Date
//   - NoPriceDataAvailable: Symbol
type Error struct {
	Kind     ErrorKind
	Reason   string
	Symbol   string
	Date     date.Date
	Actual   decimal.Decimal
	Expected decimal.Decimal
	Value    int
	Min, Max int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidConfiguration, SimulationFailed:
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	case InvalidWeightsSum:
		return fmt.Sprintf("%s: allocation weights sum to %s%%, want %s%%", e.Kind, e.Actual, e.Expected)
	case InvalidAllocation:
		return fmt.Sprintf("%s: %q with weight %s: %s", e.Kind, e.Symbol, e.Actual, e.Reason)
	case BuyDayOutOfRange:
		return fmt.Sprintf("%s: %d not in [%d, %d]", e.Kind, e.Value, e.Min, e.Max)
	case PriceNotFound:
		return fmt.Sprintf("%s: no price for %q on %s", e.Kind, e.Symbol, e.Date)
	case NoPriceDataAvailable:
		return fmt.Sprintf("%s: no price history for %q", e.Kind, e.Symbol)
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrPriceNotFound) matches any missing price.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels to be used with errors.Is.
var (
	ErrInvalidConfiguration = &Error{Kind: InvalidConfiguration}
	ErrEmptyAllocations     = &Error{Kind: EmptyAllocations}
	ErrInvalidWeightsSum    = &Error{Kind: InvalidWeightsSum}
	ErrInvalidAllocation    = &Error{Kind: InvalidAllocation}
	ErrBuyDayOutOfRange     = &Error{Kind: BuyDayOutOfRange}
	ErrNoInvestmentDates    = &Error{Kind: NoInvestmentDates}
	ErrPriceNotFound        = &Error{Kind: PriceNotFound}
	ErrNoPriceDataAvailable = &Error{Kind: NoPriceDataAvailable}
	ErrSimulationFailed     = &Error{Kind: SimulationFailed}
)

func invalidConfiguration(format string, args ...any) *Error {
	return &Error{Kind: InvalidConfiguration, Reason: fmt.Sprintf(format, args...)}
}

func invalidAllocation(a AssetAllocation, reason string) *Error {
	return &Error{Kind: InvalidAllocation, Symbol: a.Symbol, Actual: a.Weight, Reason: reason}
}

func priceNotFound(symbol string, on date.Date) *Error {
	return &Error{Kind: PriceNotFound, Symbol: symbol, Date: on}
}

func noPriceData(symbol string) *Error {
	return &Error{Kind: NoPriceDataAvailable, Symbol: symbol}
}

func simulationFailed(format string, args ...any) *Error {
	return &Error{Kind: SimulationFailed, Reason: fmt.Sprintf(format, args...)}
}
