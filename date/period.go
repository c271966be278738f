package date

import (
	"fmt"
	"strings"
)

// Period is a calendar unit a schedule can step by.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Step returns d moved forward by n periods.
// Monthly steps clamp to the end of shorter months (see AddMonth).
func (p Period) Step(d Date, n int) Date {
	switch p {
	case Daily:
		return d.Add(n)
	case Weekly:
		return d.Add(7 * n)
	case Monthly:
		return d.AddMonth(n)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
