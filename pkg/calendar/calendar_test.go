package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClampsDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"jan31 plus one", time.Date(2025, time.January, 31, 9, 30, 0, 0, time.UTC), 1, time.Date(2025, time.February, 28, 9, 30, 0, 0, time.UTC)},
		{"leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"year rollover forward", date(2024, time.December, 15), 1, date(2025, time.January, 15)},
		{"year rollover back", date(2025, time.January, 15), -1, date(2024, time.December, 15)},
		{"mar31 minus one", date(2025, time.March, 31), -1, date(2025, time.February, 28)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AddMonths(tc.in, tc.n); !got.Equal(tc.want) {
				t.Fatalf("AddMonths(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	cases := map[time.Time]int{
		date(2025, time.February, 10): 28,
		date(2024, time.February, 1):  29,
		date(2025, time.April, 30):    30,
		date(2025, time.December, 31): 31,
	}
	for in, want := range cases {
		if got := DaysIn(in); got != want {
			t.Errorf("DaysIn(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestCompareDayIgnoresClock(t *testing.T) {
	a := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.June, 10, 0, 1, 0, 0, time.UTC)
	if CompareDay(a, b) != 0 {
		t.Fatalf("expected same day")
	}
	if CompareDay(b, date(2025, time.June, 11)) != -1 {
		t.Fatalf("expected earlier day")
	}
}

func TestBoundsClampKeepsClock(t *testing.T) {
	b := Bounds{Min: date(2025, time.June, 10), Max: date(2025, time.June, 20)}
	in := time.Date(2025, time.June, 2, 14, 45, 0, 0, time.UTC)
	got := b.Clamp(in)
	want := time.Date(2025, time.June, 10, 14, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Clamp = %v, want %v", got, want)
	}
	in = time.Date(2025, time.July, 2, 8, 0, 0, 0, time.UTC)
	if got := b.Clamp(in); got.Day() != 20 || got.Hour() != 8 {
		t.Fatalf("Clamp over max = %v", got)
	}
}

func TestMonthAllowed(t *testing.T) {
	b := Bounds{Min: date(2025, time.March, 15), Max: date(2025, time.May, 1)}
	for m := time.January; m <= time.December; m++ {
		want := m >= time.March && m <= time.May
		if got := b.MonthAllowed(2025, m); got != want {
			t.Errorf("MonthAllowed(%s) = %v, want %v", m, got, want)
		}
	}
	if !(Bounds{Min: b.Min}).MonthAllowed(2090, time.January) {
		t.Fatalf("expected unbounded max to allow far future")
	}
}
