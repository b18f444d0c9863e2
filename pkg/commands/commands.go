package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/rangepick/pkg/commands/options"
	"tableflip.dev/rangepick/pkg/snake"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "rangepick",
		Short: base.Wrap80("Pick pickup and return dates from the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				return cmd.Help()
			}
			next, err := snake.PromptCommand(cmd)
			if err != nil {
				return err
			}
			if next.Flags().Lookup("interactive") != nil {
				_ = next.Flags().Set("interactive", "true")
			}
			if next.PreRunE != nil {
				if err := next.PreRunE(next, nil); err != nil {
					return err
				}
			}
			if next.RunE == nil {
				next.Run(next, nil)
				return nil
			}
			return next.RunE(next, nil)
		},
	}
	options.InteractiveArgs(cmd, i)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCal(topLevel)
	addTrips(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
