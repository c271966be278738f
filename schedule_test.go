package dca

import (
	"math"
	"testing"

	"github.com/etnz/dca/date"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateStrings(dates []date.Date) []string {
	s := make([]string, len(dates))
	for i, d := range dates {
		s[i] = d.String()
	}
	return s
}

func TestSchedule(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		interval IntervalUnit
		freq     int
		days     []int
		want     []string
	}{
		{
			name: "monthly", from: "2024-01-01", to: "2024-03-01", interval: Month, freq: 1, days: []int{1},
			want: []string{"2024-01-01", "2024-02-01", "2024-03-01"},
		},
		{
			name: "monthly from the 31st", from: "2024-01-31", to: "2024-05-01", interval: Month, freq: 1, days: []int{31},
			want: []string{"2024-01-31", "2024-02-29", "2024-03-29", "2024-04-29"},
		},
		{
			name: "every other day", from: "2024-02-27", to: "2024-03-04", interval: Day, freq: 2,
			want: []string{"2024-02-27", "2024-02-29", "2024-03-02", "2024-03-04"},
		},
		{
			name: "custom days clamp in February", from: "2023-01-01", to: "2023-03-31", interval: Month, freq: 2, days: []int{30, 15},
			want: []string{"2023-01-15", "2023-01-30", "2023-02-15", "2023-02-28", "2023-03-15", "2023-03-30"},
		},
		{
			name: "custom days clamp in leap February", from: "2024-02-01", to: "2024-02-29", interval: Month, freq: 2, days: []int{1, 30},
			want: []string{"2024-02-01", "2024-02-29"},
		},
		{
			name: "custom days outside the window", from: "2024-01-10", to: "2024-02-20", interval: Month, freq: 2, days: []int{5, 25},
			want: []string{"2024-01-25", "2024-02-05"},
		},
		{
			name: "custom days take the first distinct", from: "2024-01-01", to: "2024-01-31", interval: Month, freq: 3, days: []int{20, 5, 5},
			want: []string{"2024-01-05", "2024-01-20"},
		},
		{
			name: "custom days clamp to the same day", from: "2023-02-01", to: "2023-02-28", interval: Month, freq: 2, days: []int{30, 29},
			want: []string{"2023-02-28", "2023-02-28"},
		},
		{
			name: "weekdays", from: "2025-07-16", to: "2025-07-31", interval: WeekOfMonth, freq: 2, days: []int{3, 1},
			want: []string{"2025-07-16", "2025-07-21", "2025-07-23", "2025-07-28", "2025-07-30"},
		},
		{
			name: "sundays", from: "2025-07-01", to: "2025-07-20", interval: WeekOfMonth, freq: 1, days: []int{7},
			want: []string{"2025-07-06", "2025-07-13", "2025-07-20"},
		},
		{
			name: "weekly without days", from: "2025-07-01", to: "2025-07-20", interval: WeekOfMonth, freq: 1,
			want: []string{"2025-07-01", "2025-07-08", "2025-07-15"},
		},
		{
			name: "step longer than the window", from: "2024-01-01", to: "2024-01-05", interval: Day, freq: 5,
			want: []string{"2024-01-01"},
		},
		{
			name: "step reaching the end", from: "2024-01-01", to: "2024-01-05", interval: Day, freq: 4,
			want: []string{"2024-01-01", "2024-01-05"},
		},
		{
			name: "largest daily frequency", from: "2024-01-01", to: "2024-03-01", interval: Day, freq: math.MaxInt,
			want: []string{"2024-01-01"},
		},
		{
			name: "largest weekly frequency", from: "2024-01-01", to: "2034-03-01", interval: WeekOfMonth, freq: math.MaxInt/7 + 1,
			want: []string{"2024-01-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ScenarioConfig{
				StartDate:          day(tt.from),
				EndDate:            day(tt.to),
				Interval:           tt.interval,
				Frequency:          tt.freq,
				CustomScheduleDays: tt.days,
			}
			got, err := Schedule(c)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, dateStrings(got)); diff != "" {
				t.Errorf("Schedule() mismatch (-want +got):\n%s", diff)
			}
			window := date.Range{From: c.StartDate, To: c.EndDate}
			for _, d := range got {
				assert.True(t, window.Contains(d), "%s outside %s", d, window)
			}
		})
	}
}

func TestScheduleNoDates(t *testing.T) {
	c := ScenarioConfig{
		StartDate:          day("2024-01-10"),
		EndDate:            day("2024-01-20"),
		Interval:           Month,
		Frequency:          2,
		CustomScheduleDays: []int{1, 25},
	}
	_, err := Schedule(c)
	assert.ErrorIs(t, err, ErrNoInvestmentDates)
}

func TestScheduleIsSorted(t *testing.T) {
	c := ScenarioConfig{
		StartDate:          day("2023-11-15"),
		EndDate:            day("2024-04-15"),
		Interval:           Month,
		Frequency:          3,
		CustomScheduleDays: []int{31, 1, 15},
	}
	got, err := Schedule(c)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Before(got[i-1]), "%s before %s", got[i], got[i-1])
	}
	assert.Equal(t, "2023-11-15", got[0].String())
	assert.Equal(t, "2024-04-15", got[len(got)-1].String())
}
