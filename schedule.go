package dca

import (
	"slices"

	"github.com/etnz/dca/date"
)

// Schedule returns the investment dates of c, sorted, all within [StartDate, EndDate].
//
// Three modes exist:
//   - Month interval with a frequency of at least 2 and custom days: every month,
//     on the first Frequency distinct custom days, clamped to the month's last day.
//   - WeekOfMonth interval with custom days: every week (starting Monday), on
//     the first Frequency distinct custom weekdays, 1 being Monday and 7 Sunday.
//   - Otherwise: from StartDate, every Frequency days, weeks or months.
//
// Schedule does not validate c. It returns a NoInvestmentDates error when no date is produced.
func Schedule(c ScenarioConfig) ([]date.Date, error) {
	var dates []date.Date
	switch {
	case c.Interval == Month && c.Frequency >= 2 && len(c.CustomScheduleDays) > 0:
		dates = monthlyDates(c)
	case c.Interval == WeekOfMonth && len(c.CustomScheduleDays) > 0:
		dates = weeklyDates(c)
	default:
		dates = intervalDates(c)
	}
	if len(dates) == 0 {
		return nil, &Error{Kind: NoInvestmentDates}
	}
	slices.SortStableFunc(dates, date.Date.Compare)
	return dates, nil
}

// selectDays returns the first n distinct days in ascending order.
func selectDays(days []int, n int) []int {
	selected := slices.Clone(days)
	slices.Sort(selected)
	selected = slices.Compact(selected)
	if len(selected) > n {
		selected = selected[:n]
	}
	return selected
}

// monthlyDates keeps clamped duplicates: days 30 and 31 both invest on February's last day.
func monthlyDates(c ScenarioConfig) []date.Date {
	window := date.Range{From: c.StartDate, To: c.EndDate}
	days := selectDays(c.CustomScheduleDays, c.Frequency)

	var dates []date.Date
	for month := c.StartDate.StartOf(date.Monthly); !month.After(c.EndDate); month = month.AddMonth(1) {
		for _, d := range days {
			if on := month.WithDay(d); window.Contains(on) {
				dates = append(dates, on)
			}
		}
	}
	return dates
}

func weeklyDates(c ScenarioConfig) []date.Date {
	window := date.Range{From: c.StartDate, To: c.EndDate}
	days := selectDays(c.CustomScheduleDays, c.Frequency)

	var dates []date.Date
	for week := c.StartDate.StartOf(date.Weekly); !week.After(c.EndDate); week = week.Add(7) {
		for _, d := range days {
			offset := ((d-1)%7 + 7) % 7 // next occurrence on or after Monday
			if on := week.Add(offset); window.Contains(on) {
				dates = append(dates, on)
			}
		}
	}
	return dates
}

// intervalDates steps from the previous date: a monthly schedule started on
// the 31st is clamped by the first shorter month and keeps that day afterwards.
func intervalDates(c ScenarioConfig) []date.Date {
	if c.Frequency <= 0 {
		return nil
	}
	if c.StartDate.After(c.EndDate) {
		return nil
	}
	// A period lasts at least one day, so a longer step never reaches a second date.
	if c.Frequency > c.StartDate.DaysUntil(c.EndDate) {
		return []date.Date{c.StartDate}
	}
	period := c.Interval.period()

	var dates []date.Date
	for on := c.StartDate; !on.After(c.EndDate); {
		dates = append(dates, on)
		next := period.Step(on, c.Frequency)
		if !next.After(on) {
			break
		}
		on = next
	}
	return dates
}
