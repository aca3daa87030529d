package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: base.Wrap80("Release planning and timeline scheduling on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addDevelopers(topLevel)
	addTimeline(topLevel)
	addConflicts(topLevel)
	addMove(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletion(topLevel)
}
