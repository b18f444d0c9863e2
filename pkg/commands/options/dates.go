package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/picker"
)

// RangeOptions are the dates a calendar is classified against.
type RangeOptions struct {
	Month    string
	Min      string
	Max      string
	Start    string
	End      string
	Selected string
}

// AddRangeArgs registers the calendar date flags.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to print, example: --month="June 2025". Defaults to the selected date's month.`)
	cmd.Flags().StringVar(&o.Min, "min", "",
		`Earliest selectable day, example: --min=2025-06-03. Defaults to today.`)
	cmd.Flags().StringVar(&o.Max, "max", "",
		`Latest selectable day. Unbounded when unset.`)
	cmd.Flags().StringVar(&o.Start, "start", "",
		`Range start, example: --start="10/06/2025".`)
	cmd.Flags().StringVar(&o.End, "end", "",
		`Range end.`)
	cmd.Flags().StringVar(&o.Selected, "selected", "",
		`Selected day. Defaults to the earliest selectable day.`)
}

// Dates parses every flag; unset flags come back as the zero time.
func (o *RangeOptions) Dates(loc *time.Location) (month, minDate, maxDate, start, end, selected time.Time, err error) {
	parse := func(name, v string) time.Time {
		if v == "" || err != nil {
			return time.Time{}
		}
		t, ok := picker.ParseValue(v, loc)
		if !ok {
			err = fmt.Errorf("--%s: cannot parse %q", name, v)
		}
		return t
	}
	minDate = parse("min", o.Min)
	maxDate = parse("max", o.Max)
	start = parse("start", o.Start)
	end = parse("end", o.End)
	selected = parse("selected", o.Selected)
	if o.Month != "" && err == nil {
		month, err = time.ParseInLocation("January 2006", o.Month, loc)
		if err != nil {
			err = fmt.Errorf("--month: %w", err)
		}
	}
	return month, minDate, maxDate, start, end, selected, err
}
