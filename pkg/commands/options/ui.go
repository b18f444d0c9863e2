package options

import (
	"github.com/spf13/cobra"
)

// UIOptions configure the booking form.
type UIOptions struct {
	LogFile string
	OneWay  bool
}

func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().StringVar(&o.LogFile, "log-file", "",
		"Write structured logs to this file. Logs are discarded when unset.")
	cmd.Flags().BoolVar(&o.OneWay, "one-way", false,
		"Start with a one-way trip.")
}
