package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/ui"
	"tableflip.dev/rangepick/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	uo := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the booking form",
		Example: `
rangepick ui
rangepick ui --one-way --log-file /tmp/rangepick.log
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			i := ui.UI{
				Config:      cfg,
				Persistence: p,
				Kind:        store.KindReturn,
				LogFile:     uo.LogFile,
			}
			if uo.OneWay {
				i.Kind = store.KindOneWay
			}
			return i.Do(context.Background())
		},
	}
	options.AddUIArgs(cmd, uo)

	topLevel.AddCommand(cmd)
}
