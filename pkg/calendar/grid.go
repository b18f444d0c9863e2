package calendar

import "time"

// RangeClass describes where a day sits relative to the active range.
type RangeClass int

const (
	// RangeNone marks days outside the range or when no range is active.
	RangeNone RangeClass = iota
	// RangeStart marks the first day of the range.
	RangeStart
	// RangeEnd marks the last day of the range.
	RangeEnd
	// RangeInside marks days strictly between start and end.
	RangeInside
	// RangeStartEnd marks a single-day range.
	RangeStartEnd
)

func (c RangeClass) String() string {
	switch c {
	case RangeStart:
		return "range-start"
	case RangeEnd:
		return "range-end"
	case RangeInside:
		return "in-range"
	case RangeStartEnd:
		return "range-start range-end"
	default:
		return "none"
	}
}

// Range holds the two endpoints used for highlighting. Both must be set for
// the range to be active.
type Range struct {
	Start time.Time
	End   time.Time
}

// Active reports whether both endpoints are set.
func (r Range) Active() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Classify places day relative to the range using day-truncated comparison.
func (r Range) Classify(day time.Time) RangeClass {
	if !r.Active() {
		return RangeNone
	}
	isStart := SameDay(day, r.Start)
	isEnd := SameDay(day, r.End)
	switch {
	case isStart && isEnd:
		return RangeStartEnd
	case isStart:
		return RangeStart
	case isEnd:
		return RangeEnd
	case CompareDay(day, r.Start) > 0 && CompareDay(day, r.End) < 0:
		return RangeInside
	}
	return RangeNone
}

// Cell is one day in a month grid.
type Cell struct {
	Day      int
	Date     time.Time
	Disabled bool
	Selected bool
	Today    bool
	Range    RangeClass
}

// Grid is a classified month. Offset is the number of leading blank cells
// (the weekday of the first day, Sunday = 0).
type Grid struct {
	Month  time.Time
	Offset int
	Cells  []Cell
}

// GridOptions feeds grid generation.
type GridOptions struct {
	Selected time.Time
	Bounds   Bounds
	Range    Range
	Now      time.Time
}

// Build classifies every day in the month of opts.Selected.
func Build(opts GridOptions) Grid {
	first := MonthStart(opts.Selected)
	days := DaysIn(first)
	g := Grid{
		Month:  first,
		Offset: int(first.Weekday()),
		Cells:  make([]Cell, 0, days),
	}
	for day := 1; day <= days; day++ {
		date := time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
		cell := Cell{
			Day:      day,
			Date:     date,
			Disabled: !opts.Bounds.Contains(date),
			Range:    opts.Range.Classify(date),
		}
		if !opts.Now.IsZero() {
			cell.Today = SameDay(date, opts.Now)
		}
		cell.Selected = !cell.Disabled && day == opts.Selected.Day()
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// Cell returns the cell for a 1-indexed day.
func (g Grid) Cell(day int) (Cell, bool) {
	if day < 1 || day > len(g.Cells) {
		return Cell{}, false
	}
	return g.Cells[day-1], true
}

// Weeks lays the cells out in rows of seven. Blank cells have Day 0.
func (g Grid) Weeks() [][]Cell {
	total := g.Offset + len(g.Cells)
	rows := (total + 6) / 7
	out := make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		week := make([]Cell, 7)
		for col := 0; col < 7; col++ {
			idx := row*7 + col - g.Offset
			if idx >= 0 && idx < len(g.Cells) {
				week[col] = g.Cells[idx]
			}
		}
		out[row] = week
	}
	return out
}

// Position returns the row and column of a 1-indexed day.
func (g Grid) Position(day int) (row, col int) {
	idx := g.Offset + day - 1
	return idx / 7, idx % 7
}
