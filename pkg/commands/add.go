package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/runner/add"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	var title string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task to the release plan",
		Example: `
planner add "wire the importer" --start=2025-03-10 --end=2025-03-12 -d dev1
planner add "triage crash" --start=2025-03-11 -t bug -p critical
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			if to.StartString == "" {
				return errors.New("requires a --start date")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			start, end, err := to.GetDates()
			if err != nil {
				return output.HandleError(err)
			}
			typ, err := to.GetType()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       title,
				Start:       start,
				End:         end,
				Developer:   to.Developer,
				Type:        typ,
				Priority:    task.Priority(to.Priority),
				Status:      task.Status(to.Status),
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
