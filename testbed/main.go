package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/store"
)

type options struct {
	full   bool
	width  int
	height int
	replay string
	delay  time.Duration
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "testbed",
		Short: "Preview the picker components in a framed harness",
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&opts.full, "full", false, "use the full terminal window")
	flags.IntVar(&opts.width, "width", 80, "frame width when not fullscreen")
	flags.IntVar(&opts.height, "height", 20, "frame height when not fullscreen")
	flags.StringVar(&opts.replay, "replay", "", "comma separated keys to replay after start, e.g. \"enter,right,enter,o\"")
	flags.DurationVar(&opts.delay, "delay", 300*time.Millisecond, "pause between replayed keys")

	rootCmd.AddCommand(
		newFormCmd(&opts, "datepicker", "Preview a single pickup picker", store.KindOneWay),
		newFormCmd(&opts, "range", "Preview linked pickup and return pickers", store.KindReturn),
		newHelpCmd(&opts),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
