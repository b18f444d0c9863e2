package picker

import (
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
)

// ID names a picker inside its group. Links between pickers hold IDs, never
// pointers, so a link cannot keep a picker alive or reach a released one.
type ID string

// Config is the construction-time configuration of a picker. After
// construction the picker keeps an immutable snapshot that only
// UpdateConfig replaces.
type Config struct {
	// MinDate is the earliest selectable day. Zero means "now".
	MinDate time.Time
	// MaxDate is the latest selectable day, inclusive. Zero is unbounded.
	MaxDate time.Time

	IsRangePicker bool
	RangeStart    time.Time
	RangeEnd      time.Time
	// LinkedPicker is read for its selected date when computing the range.
	LinkedPicker ID

	// DateOnly suppresses time selection; confirm yields midnight.
	DateOnly bool

	// OnConfirm receives the finalized date.
	OnConfirm func(time.Time)
	// OnChange fires after a day click on a range participant so the host
	// can re-render or propagate.
	OnChange func(time.Time)
}

func (c Config) bounds() calendar.Bounds {
	return calendar.Bounds{Min: c.MinDate, Max: c.MaxDate}
}

// Patch is a partial config update. Nil fields are left untouched; a
// pointer to the zero time clears MaxDate, RangeStart or RangeEnd.
type Patch struct {
	MinDate       *time.Time
	MaxDate       *time.Time
	IsRangePicker *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	LinkedPicker  *ID
	DateOnly      *bool
	OnConfirm     func(time.Time)
	OnChange      func(time.Time)
}

func (c Config) apply(p Patch) Config {
	next := c
	if p.MinDate != nil {
		next.MinDate = *p.MinDate
	}
	if p.MaxDate != nil {
		next.MaxDate = *p.MaxDate
	}
	if p.IsRangePicker != nil {
		next.IsRangePicker = *p.IsRangePicker
	}
	if p.RangeStart != nil {
		next.RangeStart = *p.RangeStart
	}
	if p.RangeEnd != nil {
		next.RangeEnd = *p.RangeEnd
	}
	if p.LinkedPicker != nil {
		next.LinkedPicker = *p.LinkedPicker
	}
	if p.DateOnly != nil {
		next.DateOnly = *p.DateOnly
	}
	if p.OnConfirm != nil {
		next.OnConfirm = p.OnConfirm
	}
	if p.OnChange != nil {
		next.OnChange = p.OnChange
	}
	return next
}
