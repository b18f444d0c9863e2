package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/runner/trips"
	"tableflip.dev/rangepick/pkg/store"
)

func addTrips(topLevel *cobra.Command) {
	wo := &options.WatchOptions{}
	kind := ""

	cmd := &cobra.Command{
		Use:   "trips",
		Short: "list saved trips",
		Example: `
rangepick trips
rangepick trips --kind return --json
rangepick trips --watch
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := store.TripKind(kind)
			switch k {
			case "", store.KindOneWay, store.KindReturn:
			default:
				return output.HandleError(fmt.Errorf("%w: %q", store.ErrUnknownKind, kind))
			}
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			t := trips.Trips{
				Persistence: p,
				Kind:        k,
				JSON:        output.JSON,
				Watch:       wo.Watch,
			}
			return output.HandleError(t.Do(ctx))
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only list trips of this kind, one of 'oneway' or 'return'.")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(store.KindOneWay), string(store.KindReturn)}, cobra.ShellCompDirectiveNoFileComp
	})
	options.AddOutputArg(cmd, output)
	options.AddWatchArgs(cmd, wo)

	addTripsDelete(cmd)
	topLevel.AddCommand(cmd)
}

func addTripsDelete(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "delete a saved trip",
		Example: `
rangepick trips delete 5f2b9c0e7a1d3c44
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return tripCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			t, err := p.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			return p.Delete(t)
		},
	}
	parent.AddCommand(cmd)
}
