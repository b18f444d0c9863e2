package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/picker"
	"tableflip.dev/rangepick/pkg/printers"
	"tableflip.dev/rangepick/pkg/runner/cal"
	"tableflip.dev/rangepick/pkg/snake"
)

func addCal(topLevel *cobra.Command) {
	ro := &options.RangeOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "print a month the way the picker classifies it",
		Example: `
rangepick cal
rangepick cal --month "July 2025" --start 2025-07-03 --end 2025-07-09
rangepick cal -i
`,
		ValidArgs: []string{},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				return nil
			}
			date := func(s string) error {
				if _, ok := picker.ParseValue(s, time.Local); !ok {
					return fmt.Errorf("not a date: %q", s)
				}
				return nil
			}
			month := func(s string) error {
				_, err := time.Parse("January 2006", s)
				return err
			}
			return snake.PromptFlags(cmd, map[string]snake.Validator{
				"month":    month,
				"min":      date,
				"max":      date,
				"start":    date,
				"end":      date,
				"selected": date,
			}, "month", "start", "end")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			month, minDate, maxDate, start, end, selected, err := ro.Dates(time.Local)
			if err != nil {
				return err
			}
			c := cal.Cal{
				Month:    month,
				Min:      minDate,
				Max:      maxDate,
				Start:    start,
				End:      end,
				Selected: selected,
				Printer:  printers.New(color.Output),
			}
			return c.Do(context.Background())
		},
	}
	options.AddRangeArgs(cmd, ro)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
