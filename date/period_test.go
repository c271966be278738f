package date

import (
	"testing"
	"time"
)

func TestNewWeeklyRange(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Range
	}{
		{
			name: "A Wednesday",
			in:   New(2025, time.September, 10),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "A Sunday",
			in:   New(2025, time.September, 14),
			want: Range{From: New(2025, time.September, 8), To: New(2025, time.September, 14)},
		},
		{
			name: "Across a year",
			in:   New(2025, time.January, 1),
			want: Range{From: New(2024, time.December, 30), To: New(2025, time.January, 5)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewRange(tc.in, Weekly)
			if got != tc.want {
				t.Errorf("NewRange(%v, Weekly) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestPeriodStep(t *testing.T) {
	from := New(2024, time.January, 31)
	tests := []struct {
		period Period
		n      int
		want   Date
	}{
		{Daily, 3, New(2024, time.February, 3)},
		{Weekly, 2, New(2024, time.February, 14)},
		{Monthly, 1, New(2024, time.February, 29)},
	}
	for _, tt := range tests {
		t.Run(tt.period.String(), func(t *testing.T) {
			if got := tt.period.Step(from, tt.n); got != tt.want {
				t.Errorf("%v.Step(%v, %d) = %v, want %v", tt.period, from, tt.n, got, tt.want)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "Weekly": Weekly, "month": Monthly} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Fatalf("ParsePeriod(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod(\"fortnight\") want error")
	}
}

func TestRangeDays(t *testing.T) {
	r := Range{From: New(2024, time.February, 27), To: New(2024, time.March, 1)}
	var got []string
	for d := range r.Days() {
		got = append(got, d.String())
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01"}
	if len(got) != len(want) || r.Len() != len(want) {
		t.Fatalf("Days() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !r.Contains(New(2024, time.February, 29)) || r.Contains(New(2024, time.March, 2)) {
		t.Errorf("Contains() is inconsistent with %v", r)
	}
	if empty := (Range{From: r.To, To: r.From}); empty.Len() != 0 {
		t.Errorf("reversed range Len() = %d, want 0", empty.Len())
	}
}
