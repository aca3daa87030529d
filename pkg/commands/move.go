package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/commands/options"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/runner/move"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/drag"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}
	geo := &options.GeometryOptions{}

	cmd := &cobra.Command{
		Use:   "move <task-id>",
		Short: "Reschedule a task by a drop position, keeping its duration",
		Example: `
planner move 171dff69f8b99dca --at=0.27
planner move 171dff69f8b99dca --x=430 --left=80 --width=1200
planner move 171dff69f8b99dca --at=0.5 --view week
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			view, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}

			var geom *drag.DropGeometry
			if !geo.HasFraction() {
				g, err := geo.GetGeometry()
				if err != nil {
					return output.HandleError(err)
				}
				geom = &g
			}

			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := move.Move{
				ID:          io.ID,
				View:        view,
				Year:        vo.GetYear(),
				Fraction:    geo.Fraction,
				Geometry:    geom,
				Persistence: p,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}
	options.AddViewArgs(cmd, vo)
	options.AddGeometryArgs(cmd, geo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
