package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	cal "tableflip.dev/rangepick/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// plainWidth is a week in plain mode, where each day carries two markers.
const plainWidth = len("[11][12][13][14][15][16][17]")

// Month prints a classified month grid: disabled days are faint, range
// endpoints and the selected day stand out and days inside the range are
// tinted.
func (pp *PrettyPrint) Month(g cal.Grid) {
	if pp.Plain {
		pp.monthPlain(g)
		return
	}

	tf := color.New(color.FgWhite, color.Italic)
	pp.centred(tf, g.Month.Format("January 2006"), width)
	_, _ = color.New(color.Faint).Fprintln(pp.Out, "Su Mo Tu We Th Fr Sa")

	d := time.Weekday(g.Offset)
	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.Out, strings.Repeat("   ", g.Offset))

	for _, c := range g.Cells {
		_, _ = dayColor(c).Fprintf(pp.Out, "%2d", c.Day)
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.Out, "\n")
		} else {
			_, _ = fmt.Fprint(pp.Out, " ")
		}
	}
	_, _ = fmt.Fprint(pp.Out, "\n\n")
}

func dayColor(c cal.Cell) *color.Color {
	switch c.Range {
	case cal.RangeStart, cal.RangeEnd, cal.RangeStartEnd:
		return color.New(color.Bold, color.FgBlack, color.BgHiBlue)
	case cal.RangeInside:
		return color.New(color.FgHiBlue)
	}
	attrs := []color.Attribute{color.FgHiWhite}
	switch {
	case c.Disabled:
		attrs = []color.Attribute{color.Faint, color.FgWhite}
	case c.Selected:
		attrs = []color.Attribute{color.Bold, color.ReverseVideo}
	}
	if c.Today {
		attrs = append(attrs, color.Underline)
	}
	return color.New(attrs...)
}

func (pp *PrettyPrint) monthPlain(g cal.Grid) {
	title := g.Month.Format("January 2006")
	mid := (plainWidth - len(title)) / 2
	_, _ = fmt.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = fmt.Fprintln(pp.Out, " Su  Mo  Tu  We  Th  Fr  Sa")

	var b strings.Builder
	b.WriteString(strings.Repeat("    ", g.Offset))
	col := g.Offset
	for _, c := range g.Cells {
		open, closing := PlainMarkers(c)
		fmt.Fprintf(&b, "%c%2d%c", open, c.Day, closing)
		col++
		if col == 7 {
			col = 0
			b.WriteString("\n")
		}
	}
	_, _ = fmt.Fprint(pp.Out, strings.TrimRight(b.String(), "\n")+"\n\n")
	_, _ = fmt.Fprintln(pp.Out, "[ start  ] end  - in range  * selected  ( ) unavailable")
	_, _ = fmt.Fprintln(pp.Out)
}

// PlainMarkers returns the characters drawn either side of a day in plain
// output.
func PlainMarkers(c cal.Cell) (rune, rune) {
	switch c.Range {
	case cal.RangeStartEnd:
		return '[', ']'
	case cal.RangeStart:
		return '[', ' '
	case cal.RangeEnd:
		return ' ', ']'
	case cal.RangeInside:
		return '-', '-'
	}
	switch {
	case c.Disabled:
		return '(', ')'
	case c.Selected:
		return '*', '*'
	}
	return ' ', ' '
}

func (pp *PrettyPrint) centred(c *color.Color, s string, w int) {
	mid := (w - len(s)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = c.Fprintf(pp.Out, "%s%s\n", strings.Repeat(" ", mid), s)
}
