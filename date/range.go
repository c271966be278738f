package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Len returns the number of days in the range, 0 if To is before From.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	return r.From.DaysUntil(r.To) + 1
}

// Days iterates over every day of the range in chronological order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
