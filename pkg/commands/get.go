package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/runner/get"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	var (
		typ       task.Type
		developer string
	)

	long := strings.Builder{}
	long.WriteString("Get all or a filtered set of tasks.\n\nTask types:\n")
	validArgs := make([]string, 0, 5)
	for _, t := range task.Types() {
		long.WriteString(fmt.Sprintf("%s: %s\n", t.Symbol(), t))
		validArgs = append(validArgs, string(t))
	}

	cmd := &cobra.Command{
		Use:   "get [type]",
		Short: "get tasks",
		Long:  long.String(),
		Example: `
planner get
planner get bug
planner get story --developer dev1
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				typ = task.TypeAny
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many arguments, confused")
			}
			var err error
			typ, err = task.ParseType(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Type:        typ,
				Developer:   developer,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVarP(&developer, "developer", "d", "",
		"Only tasks assigned to this developer id.")

	topLevel.AddCommand(cmd)
}
