package picker

import (
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
)

// MonthOption is one button of the month selector.
type MonthOption struct {
	Month    time.Month
	Label    string
	Disabled bool
	Selected bool
}

// OpenMonthSelector switches the calendar to the month/year chooser for
// the displayed year.
func (p *Picker) OpenMonthSelector() bool {
	if p.state != StateCalendar {
		return false
	}
	p.state = StateMonthSelector
	p.selectorYear = p.selected.Year()
	return true
}

// CloseMonthSelector returns to the calendar without changing anything.
func (p *Picker) CloseMonthSelector() {
	if p.state == StateMonthSelector {
		p.state = StateCalendar
	}
}

// SelectorYear is the year the month selector is showing.
func (p *Picker) SelectorYear() int { return p.selectorYear }

// PrevYear steps the selector back a year, never before the current year.
func (p *Picker) PrevYear() bool {
	if p.state != StateMonthSelector || p.selectorYear <= p.group.Now().Year() {
		return false
	}
	p.selectorYear--
	return true
}

// NextYear steps the selector forward a year.
func (p *Picker) NextYear() bool {
	if p.state != StateMonthSelector {
		return false
	}
	p.selectorYear++
	return true
}

// MonthOptions lists the twelve months of the selector year.
func (p *Picker) MonthOptions() []MonthOption {
	b := p.bounds()
	out := make([]MonthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		out = append(out, MonthOption{
			Month:    m,
			Label:    m.String(),
			Disabled: !b.MonthAllowed(p.selectorYear, m),
			Selected: p.selectorYear == p.selected.Year() && m == p.selected.Month(),
		})
	}
	return out
}

// SelectMonth moves the calendar to month of the selector year and returns
// to the day grid. Months before the current month or outside the bounds
// are rejected silently.
func (p *Picker) SelectMonth(m time.Month) bool {
	if p.state != StateMonthSelector || m < time.January || m > time.December {
		return false
	}
	next := calendar.WithYearMonth(p.selected, p.selectorYear, m)
	if calendar.CompareMonth(next, p.group.Now()) < 0 {
		return false
	}
	b := p.bounds()
	if !b.MonthAllowed(p.selectorYear, m) {
		return false
	}
	p.selected = b.Clamp(next)
	p.state = StateCalendar
	return true
}
