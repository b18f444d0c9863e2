// Package clock models a 12-hour time of day and its conversion to the
// 24-hour hour field of a time.Time.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Period is the AM/PM half of the day.
type Period string

const (
	// AM covers midnight up to noon.
	AM Period = "AM"
	// PM covers noon up to midnight.
	PM Period = "PM"
)

// Periods lists the selectable periods in display order.
func Periods() []Period { return []Period{AM, PM} }

// ErrInvalidTime is returned by Parse for text that is not h:mm AM/PM.
var ErrInvalidTime = errors.New("clock: invalid time")

var timePattern = regexp.MustCompile(`(?i)^\s*(0?[1-9]|1[0-2]):([0-5][0-9])\s*(AM|PM)\s*$`)

// Time is a wall-clock time in 12-hour form. Hour is always 1..12.
type Time struct {
	Hour   int
	Minute int
	Period Period
}

// Midnight is 12:00 AM, the value used when nothing has been chosen.
var Midnight = Time{Hour: 12, Minute: 0, Period: AM}

// FromHour24 converts a 24-hour hour and minute to 12-hour form.
func FromHour24(hour, minute int) Time {
	hour = ((hour % 24) + 24) % 24
	p := AM
	if hour >= 12 {
		p = PM
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return Time{Hour: h, Minute: minute, Period: p}
}

// Of returns the 12-hour time of day of t.
func Of(t time.Time) Time {
	return FromHour24(t.Hour(), t.Minute())
}

// Hour24 converts to the 24-hour hour field. 12 AM is 0, 12 PM stays 12, and
// every other PM hour gains 12.
func (t Time) Hour24() int {
	h := t.Hour
	switch {
	case t.Period == PM && h != 12:
		h += 12
	case t.Period == AM && h == 12:
		h = 0
	}
	return h
}

// Valid reports whether the fields are in range.
func (t Time) Valid() bool {
	return t.Hour >= 1 && t.Hour <= 12 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		(t.Period == AM || t.Period == PM)
}

// On applies the time of day to the date of d.
func (t Time) On(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour24(), t.Minute, 0, 0, d.Location())
}

// String renders "h:mm AM".
func (t Time) String() string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Period)
}

// Parse reads strict "h:mm AM/PM" text. The period is case-insensitive and
// the space before it is optional.
func Parse(s string) (Time, error) {
	m := timePattern.FindStringSubmatch(s)
	if len(m) != 4 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, strings.TrimSpace(s))
	}
	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return Time{}, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	return Time{Hour: hour, Minute: minute, Period: Period(strings.ToUpper(m[3]))}, nil
}
