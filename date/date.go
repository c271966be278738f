// Package date implements a day-granular calendar used to schedule investments.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
//
// The zero Date is not a valid calendar day, use IsZero to detect it.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
// Out of range values are normalized the way time.Date does it.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Of returns the calendar day of t, in t's own location.
func Of(t time.Time) Date { return New(t.Date()) }

// Today returns the current date.
func Today() Date { return Of(time.Now()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// Weekday returns the day of the week for the date.
func (d Date) Weekday() time.Weekday { return d.time().Weekday() }

// ISOWeekday returns the day of the week numbered from 1 (Monday) to 7 (Sunday).
func (d Date) ISOWeekday() int {
	if wd := d.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// AddMonth returns the same day n months later.
//
// When that day does not exist in the target month it is clamped to the
// month's last day: 2024-01-31 plus one month is 2024-02-29.
func (d Date) AddMonth(n int) Date {
	first := New(d.y, d.m+time.Month(n), 1)
	return first.WithDay(d.d)
}

// WithDay returns the given day of d's month, clamped to [1, DaysIn(month)].
func (d Date) WithDay(day int) Date {
	last := DaysIn(d.y, d.m)
	switch {
	case day < 1:
		day = 1
	case day > last:
		day = last
	}
	return Date{d.y, d.m, day}
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	return New(year, month+1, 0).d
}

const secondsPerDay = 24 * 60 * 60

// DaysUntil returns the number of days from d to x, negative if x is before d.
func (d Date) DaysUntil(x Date) int {
	return int((x.time().Unix() - d.time().Unix()) / secondsPerDay)
}

// StartOf returns the first day of the period containing d.
// Weeks start on Monday.
func (d Date) StartOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.Add(1 - d.ISOWeekday())
	case Monthly:
		return Date{d.y, d.m, 1}
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(period Period) Date {
	switch period {
	case Daily:
		return d
	case Weekly:
		return d.Add(7 - d.ISOWeekday())
	case Monthly:
		return Date{d.y, d.m, DaysIn(d.y, d.m)}
	default:
		panic(fmt.Sprintf("unknown period %d", period))
	}
}

// String format the date in its standard format.
func (d Date) String() string { return d.time().Format(DateFormat) }

// Format returns a textual representation of the date using a time layout.
func (d Date) Format(layout string) string { return d.time().Format(layout) }

// Parse parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return Of(on), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON reads a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	x, err := Parse(str)
	if err != nil {
		return err
	}
	*d = x
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
