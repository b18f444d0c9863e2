// Package cal prints one month classified the way a picker would draw it.
package cal

import (
	"context"
	"time"

	"tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/printers"
)

// Cal holds the dates the month is classified against. Zero values mean
// unset.
type Cal struct {
	Month    time.Time
	Min      time.Time
	Max      time.Time
	Start    time.Time
	End      time.Time
	Selected time.Time
	Now      time.Time

	Printer *printers.PrettyPrint
}

// Do prints the month.
func (c *Cal) Do(_ context.Context) error {
	now := c.Now
	if now.IsZero() {
		now = time.Now()
	}
	minDate := c.Min
	if minDate.IsZero() {
		minDate = now
	}
	bounds := calendar.Bounds{Min: minDate, Max: c.Max}

	selected := c.Selected
	if selected.IsZero() {
		selected = minDate
	}
	if !c.Month.IsZero() {
		selected = calendar.WithYearMonth(selected, c.Month.Year(), c.Month.Month())
	}

	pp := c.Printer
	if pp == nil {
		pp = printers.New(nil)
	}
	pp.Month(calendar.Build(calendar.GridOptions{
		Selected: selected,
		Bounds:   bounds,
		Range:    calendar.Range{Start: c.Start, End: c.End},
		Now:      now,
	}))
	return nil
}
