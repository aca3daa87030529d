package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	rt "github.com/shekhar992/smart-release-planner-sub003/pkg/runner/timeline"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
)

func addTimeline(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "Print the timeline window with task bars and today's marker",
		Example: `
planner timeline
planner timeline --view week
planner timeline --view day --year 2026
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			view, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := rt.Timeline{
				View:        view,
				Year:        vo.GetYear(),
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddViewArgs(cmd, vo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
