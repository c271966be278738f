package dca

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/dca/date"
)

// IntervalUnit is the calendar unit of a contribution schedule.
type IntervalUnit int

const (
	Day IntervalUnit = iota
	WeekOfMonth
	Month
)

func (u IntervalUnit) String() string {
	switch u {
	case Day:
		return "day"
	case WeekOfMonth:
		return "weekOfMonth"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("IntervalUnit(%d)", int(u))
	}
}

// period returns the calendar period a generic schedule steps by.
func (u IntervalUnit) period() date.Period {
	switch u {
	case WeekOfMonth:
		return date.Weekly
	case Month:
		return date.Monthly
	default:
		return date.Daily
	}
}

func (u IntervalUnit) valid() bool { return u >= Day && u <= Month }

// hasCustomDays reports whether the unit expects a list of custom schedule days.
func (u IntervalUnit) hasCustomDays() bool { return u == WeekOfMonth || u == Month }

// customDayRange returns the allowed values of a custom schedule day for this unit.
func (u IntervalUnit) customDayRange() (min, max int) {
	if u == WeekOfMonth {
		return 1, 7
	}
	return 1, 31
}

// ParseIntervalUnit parses a unit name, case insensitive. "week" is accepted for weekOfMonth.
func ParseIntervalUnit(s string) (IntervalUnit, error) {
	switch strings.ToLower(s) {
	case "day", "daily":
		return Day, nil
	case "weekofmonth", "week", "weekly":
		return WeekOfMonth, nil
	case "month", "monthly":
		return Month, nil
	default:
		return Day, fmt.Errorf("unknown interval unit %q", s)
	}
}

func (u IntervalUnit) MarshalJSON() ([]byte, error) { return json.Marshal(u.String()) }

func (u *IntervalUnit) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseIntervalUnit(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
