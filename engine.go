package dca

import (
	"time"

	"github.com/etnz/dca/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine runs DCA simulations. It holds no state between runs and is safe for concurrent use.
type Engine struct {
	log *zap.Logger
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger, zap.L() by default.
func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

// WithClock sets the function stamping results, time.Now by default.
func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: zap.L(), now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

// Simulate runs c against o with a default Engine.
func Simulate(c ScenarioConfig, o PriceOracle) (*SimulationResult, error) {
	return NewEngine().Simulate(c, o)
}

// run is the state of a single simulation.
type run struct {
	cfg      ScenarioConfig
	oracle   PriceOracle
	log      *zap.Logger
	book     *book
	timeline []ValuePoint
}

// Simulate validates c, schedules the investment dates, invests on each of
// them at the prices given by o, and values the resulting portfolio on the end date.
//
// Any failure aborts the simulation: the returned error is an *Error and the result is nil.
func (e *Engine) Simulate(c ScenarioConfig, o PriceOracle) (*SimulationResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dates, err := Schedule(c)
	if err != nil {
		return nil, err
	}
	log := e.log.With(zap.String("scenario", c.ID.String()))
	log.Info("simulation started",
		zap.String("name", c.Name),
		zap.Stringer("from", c.StartDate),
		zap.Stringer("to", c.EndDate),
		zap.Int("dates", len(dates)),
	)

	r := &run{cfg: c, oracle: o, log: log, book: newBook()}
	if err := r.contributions(dates, r.snapshot); err != nil {
		log.Warn("simulation failed", zap.Error(err))
		return nil, err
	}
	result, err := r.finalize(c.EndDate)
	if err != nil {
		log.Warn("simulation failed", zap.Error(err))
		return nil, err
	}
	result.SimulationTimestamp = e.now()

	log.Info("simulation completed",
		zap.Int("deals", len(result.Deals)),
		zap.Stringer("invested", result.InvestedTotal),
		zap.Stringer("value", result.CurrentValue),
	)
	return result, nil
}

// finalize prices every configured allocation on end and assembles the result.
func (r *run) finalize(end date.Date) (*SimulationResult, error) {
	rows := make([]BreakdownRow, 0, len(r.cfg.Allocations))
	value := decimal.Zero
	for _, a := range r.cfg.Allocations {
		price, ok := r.oracle.HistoricalPrice(end, a.Symbol)
		if !ok {
			return nil, priceNotFound(a.Symbol, end)
		}
		p := r.book.get(a.Symbol)
		row := BreakdownRow{
			Symbol:       a.Symbol,
			TotalUnits:   p.units,
			AvgCost:      div(p.invested, p.units),
			CurrentPrice: price,
			CurrentValue: p.units.Mul(price),
		}
		row.PnLAbsolute = row.CurrentValue.Sub(p.invested)
		row.PnLPercent = percent(row.PnLAbsolute, p.invested)
		rows = append(rows, row)
		value = value.Add(row.CurrentValue)
	}

	if err := r.closeTimeline(end); err != nil {
		return nil, err
	}

	profit := value.Sub(r.book.invested)
	return &SimulationResult{
		InvestedTotal:      r.book.invested,
		CurrentValue:       value,
		ProfitAbsolute:     profit,
		ProfitPercent:      percent(profit, r.book.invested),
		MaxDrawdownPercent: MaxDrawdown(r.timeline),
		Deals:              r.book.deals,
		Breakdown:          rows,
		timeline:           r.timeline,
	}, nil
}
