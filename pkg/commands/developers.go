package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/runner/developers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
)

func addDevelopers(topLevel *cobra.Command) {
	var (
		role   string
		remove string
	)

	cmd := &cobra.Command{
		Use:     "developers [name]",
		Aliases: []string{"devs", "team"},
		Short:   "List the team, or add a developer by name",
		Example: `
planner developers
planner developers "Asha Rao" --role backend
planner developers --remove 171dff69f8b99dca
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := developers.Developers{
				Name:        strings.Join(args, " "),
				Role:        role,
				Remove:      remove,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVar(&role, "role", "", "Role for the added developer.")
	cmd.Flags().StringVar(&remove, "remove", "", "Remove the developer with this id.")

	topLevel.AddCommand(cmd)
}
