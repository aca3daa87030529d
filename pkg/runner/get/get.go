package get

import (
	"context"
	"errors"
	"fmt"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

type Get struct {
	ShowID    bool
	Type      task.Type
	Developer string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	all := n.filtered(n.Persistence.ListTasks(ctx))
	pp.TitleWithCount("tasks", len(all))
	pp.Tasks(all...)
	return nil
}

func (n *Get) filtered(all []*task.Task) []*task.Task {
	c := make([]*task.Task, 0, len(all))
	for _, t := range all {
		if n.Type != task.TypeAny && n.Type != t.Type {
			continue
		}
		if n.Developer != "" && n.Developer != t.AssignedDeveloperID {
			continue
		}
		c = append(c, t)
	}
	return c
}
