package timepanel

import (
	"fmt"

	"tableflip.dev/rangepick/pkg/clock"
)

// Selection is the per-column choice. Columns are independent and are only
// combined when read through Time.
type Selection struct {
	Hour   int
	Minute int
	Period clock.Period

	HourSet   bool
	MinuteSet bool
	PeriodSet bool
}

func selectionOf(t clock.Time) Selection {
	return Selection{
		Hour:      t.Hour,
		Minute:    t.Minute,
		Period:    t.Period,
		HourSet:   true,
		MinuteSet: true,
		PeriodSet: true,
	}
}

// Time combines the columns, defaulting unset ones to 12, 00 and AM.
func (s Selection) Time() clock.Time {
	t := clock.Midnight
	if s.HourSet {
		t.Hour = s.Hour
	}
	if s.MinuteSet {
		t.Minute = s.Minute
	}
	if s.PeriodSet {
		t.Period = s.Period
	}
	return t
}

// Text renders the composite "h:mm AM" string.
func (s Selection) Text() string { return s.Time().String() }

// Index returns the option index chosen in col.
func (s Selection) Index(col Column) (int, bool) {
	switch col {
	case Hours:
		return s.Hour - 1, s.HourSet
	case Minutes:
		return s.Minute, s.MinuteSet
	case Periods:
		if s.Period == clock.PM {
			return 1, s.PeriodSet
		}
		return 0, s.PeriodSet
	}
	return 0, false
}

// Value converts an option index in col to the value Select expects.
func Value(col Column, idx int) int {
	if col == Hours {
		return idx + 1
	}
	return idx
}

// Label renders the option at idx in col.
func Label(col Column, idx int) string {
	switch col {
	case Hours:
		return fmt.Sprintf("%02d", idx+1)
	case Minutes:
		return fmt.Sprintf("%02d", idx)
	case Periods:
		return string(clock.Periods()[idx])
	}
	return ""
}
