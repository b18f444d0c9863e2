// Package calendar holds the date arithmetic behind the range picker: day
// truncation, month rollover, bounds and grid classification.
package calendar

import "time"

// Truncate returns midnight of t's day in t's location.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthStart returns midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := MonthStart(month)
	return first.AddDate(0, 1, -1).Day()
}

// CompareDay compares a and b by year, month and day only.
func CompareDay(a, b time.Time) int {
	da := Truncate(a)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, a.Location())
	switch {
	case da.Before(db):
		return -1
	case da.After(db):
		return 1
	}
	return 0
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// CompareMonth compares a and b by year and month only.
func CompareMonth(a, b time.Time) int {
	ma := a.Year()*12 + int(a.Month())
	mb := b.Year()*12 + int(b.Month())
	switch {
	case ma < mb:
		return -1
	case ma > mb:
		return 1
	}
	return 0
}

// AddMonths moves t by n months keeping the time of day. The day is clamped
// to the length of the target month, so January 31 plus one month is the
// last day of February rather than early March.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	return WithYearMonth(t, first.Year(), first.Month())
}

// WithYearMonth replaces t's year and month, clamping the day.
func WithYearMonth(t time.Time, year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := DaysIn(first); day > last {
		day = last
	}
	return time.Date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// WithDay replaces t's day of month, keeping the time of day. Days outside
// the month are clamped.
func WithDay(t time.Time, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := DaysIn(t); day > last {
		day = last
	}
	return time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// WithClock replaces t's hour and minute, zeroing seconds.
func WithClock(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// Bounds is an inclusive day range. A zero Max means unbounded.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// HasMax reports whether an upper bound is set.
func (b Bounds) HasMax() bool { return !b.Max.IsZero() }

// Contains reports whether t's day lies within the bounds.
func (b Bounds) Contains(t time.Time) bool {
	if !b.Min.IsZero() && CompareDay(t, b.Min) < 0 {
		return false
	}
	if b.HasMax() && CompareDay(t, b.Max) > 0 {
		return false
	}
	return true
}

// Clamp moves t's day into the bounds, keeping its time of day.
func (b Bounds) Clamp(t time.Time) time.Time {
	if !b.Min.IsZero() && CompareDay(t, b.Min) < 0 {
		return time.Date(b.Min.Year(), b.Min.Month(), b.Min.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	if b.HasMax() && CompareDay(t, b.Max) > 0 {
		return time.Date(b.Max.Year(), b.Max.Month(), b.Max.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	}
	return t
}

// MonthAllowed reports whether any day of the month overlaps the bounds.
func (b Bounds) MonthAllowed(year int, month time.Month) bool {
	m := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if !b.Min.IsZero() && CompareMonth(m, b.Min) < 0 {
		return false
	}
	if b.HasMax() && CompareMonth(m, b.Max) > 0 {
		return false
	}
	return true
}
