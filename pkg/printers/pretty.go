// Package printers writes calendars and trip lists for the command line.
package printers

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/termenv"

	"tableflip.dev/rangepick/pkg/store"
)

// PrettyPrint writes human readable output.
type PrettyPrint struct {
	Out io.Writer
	// Plain marks selection and range with brackets instead of colour, for
	// terminals (or pipes) that cannot show colour.
	Plain bool
}

// New returns a printer for out, choosing plain output when the
// environment's colour profile has no colours.
func New(out io.Writer) *PrettyPrint {
	if out == nil {
		out = color.Output
	}
	profile := termenv.NewOutput(out).EnvColorProfile()
	return &PrettyPrint{Out: out, Plain: profile == termenv.Ascii || color.NoColor}
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out)
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.Plain {
		_, _ = fmt.Fprintln(pp.Out, title)
		return
	}
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	if pp.Plain {
		t.DisableColor()
		c.DisableColor()
	}

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " trip")
	default:
		_, _ = c.Fprintln(pp.Out, " trips")
	}
}

// TripLayout is how trip dates are printed.
const TripLayout = "Mon 02 Jan 2006 03:04 PM"

// Trips prints one row per trip.
func (pp *PrettyPrint) Trips(trips []*store.Trip) {
	if len(trips) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.Plain {
			f.DisableColor()
		}
		_, _ = f.Fprint(pp.Out, " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	if pp.Plain {
		bold.DisableColor()
		id.DisableColor()
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Kind"), bold.Sprint("Pickup"), bold.Sprint("Return"), bold.Sprint("Nights"))
	for _, t := range trips {
		ret, nights := "-", "-"
		if t.Kind == store.KindReturn && !t.Return.IsZero() {
			ret = t.Return.Format(TripLayout)
			nights = fmt.Sprint(Nights(t.Pickup, t.Return))
		}
		tbl.AddRow(id.Sprint(t.ID), string(t.Kind), t.Pickup.Format(TripLayout), ret, nights)
	}
	tbl.RightAlign(4)

	_, _ = fmt.Fprintln(pp.Out, tbl)
	_, _ = fmt.Fprintln(pp.Out)
}

// Nights counts calendar days between pickup and return.
func Nights(pickup, ret time.Time) int {
	a := time.Date(pickup.Year(), pickup.Month(), pickup.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(ret.Year(), ret.Month(), ret.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
