// Package calendar renders classified month grids and the month selector.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/rangepick/pkg/calendar"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/tui/theme"
)

// Header is the weekday row, Sunday first.
const Header = "Su Mo Tu We Th Fr Sa"

// cellWidth is a two-digit day plus the separating space.
const cellWidth = 3

// monthCols is the width of the month selector grid.
const monthCols = 3

// Options controls calendar styling.
type Options struct {
	HeaderStyle      lipgloss.Style
	EmptyStyle       lipgloss.Style
	DayStyle         lipgloss.Style
	DisabledStyle    lipgloss.Style
	TodayStyle       lipgloss.Style
	SelectedStyle    lipgloss.Style
	CursorStyle      lipgloss.Style
	RangeEdgeStyle   lipgloss.Style
	RangeInsideStyle lipgloss.Style

	MonthStyle         lipgloss.Style
	MonthDisabledStyle lipgloss.Style
	MonthSelectedStyle lipgloss.Style

	ShowHeader bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return FromTheme(theme.Default().Calendar)
}

// FromTheme maps theme styles onto renderer options.
func FromTheme(t theme.CalendarTheme) Options {
	return Options{
		HeaderStyle:        t.Weekday,
		EmptyStyle:         lipgloss.NewStyle(),
		DayStyle:           t.Day,
		DisabledStyle:      t.Disabled,
		TodayStyle:         t.Today,
		SelectedStyle:      t.Selected,
		CursorStyle:        t.Cursor,
		RangeEdgeStyle:     t.RangeEdge,
		RangeInsideStyle:   t.RangeInside,
		MonthStyle:         t.Month,
		MonthDisabledStyle: t.MonthDisabled,
		MonthSelectedStyle: t.MonthSelected,
		ShowHeader:         true,
	}
}

// Render produces the multi-line day grid. cursor is the day under the
// keyboard cursor, or 0 for none.
func Render(g cal.Grid, cursor int, opts Options) string {
	if g.Month.IsZero() {
		return ""
	}
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}
	for _, week := range g.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			if c.Day == 0 {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(c, c.Day == cursor, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderDay(c cal.Cell, cursor bool, opts Options) string {
	text := fmt.Sprintf("%2d", c.Day)

	style := opts.DayStyle
	switch c.Range {
	case cal.RangeInside:
		style = opts.RangeInsideStyle
	case cal.RangeStart, cal.RangeEnd, cal.RangeStartEnd:
		style = opts.RangeEdgeStyle
	}
	if c.Disabled {
		style = opts.DisabledStyle
	}
	if c.Selected {
		style = opts.SelectedStyle
	}
	if c.Today {
		style = style.Inherit(opts.TodayStyle)
	}
	if cursor {
		style = style.Inherit(opts.CursorStyle)
	}
	return style.Render(text)
}

// Width is the rendered width of a grid row.
func Width() int { return lipgloss.Width(Header) }

// DayAt maps a point relative to the top-left of a rendered grid to a day.
// Points on blanks, separators or the header report false.
func DayAt(g cal.Grid, x, y int, showHeader bool) (int, bool) {
	if showHeader {
		y--
	}
	if x < 0 || y < 0 || x%cellWidth == cellWidth-1 {
		return 0, false
	}
	col := x / cellWidth
	if col > 6 {
		return 0, false
	}
	day := y*7 + col - g.Offset + 1
	if day < 1 || day > len(g.Cells) {
		return 0, false
	}
	return day, true
}

// RenderMonths draws the month selector as a grid of short month names.
// cursor is the month under the keyboard cursor, or 0 for none.
func RenderMonths(months []picker.MonthOption, cursor time.Month, opts Options) string {
	var lines []string
	var row []string
	for i, m := range months {
		label := fmt.Sprintf(" %s ", m.Label[:3])
		style := opts.MonthStyle
		if m.Disabled {
			style = opts.MonthDisabledStyle
		}
		if m.Selected {
			style = opts.MonthSelectedStyle
		}
		if m.Month == cursor {
			style = style.Inherit(opts.CursorStyle)
		}
		row = append(row, style.Render(label))
		if (i+1)%monthCols == 0 {
			lines = append(lines, strings.Join(row, " "))
			row = nil
		}
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

// MonthAt maps a point relative to the top-left of the month selector grid
// to a month.
func MonthAt(x, y int) (time.Month, bool) {
	const w = 6 // " Jan " plus separator
	if x < 0 || y < 0 || x%w == w-1 {
		return 0, false
	}
	col := x / w
	if col >= monthCols {
		return 0, false
	}
	m := time.Month(y*monthCols + col + 1)
	if m > time.December {
		return 0, false
	}
	return m, true
}
