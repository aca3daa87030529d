package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/runner/conflicts"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
)

func addConflicts(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var developer string

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Detect overlapping tasks per developer",
		Example: `
planner conflicts
planner conflicts --developer dev1
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := conflicts.Conflicts{
				ShowID:      io.ShowID,
				Developer:   developer,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVarP(&developer, "developer", "d", "",
		"Only conflicts for this developer id.")

	topLevel.AddCommand(cmd)
}
