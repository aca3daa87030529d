package add

import (
	"context"
	"errors"
	"time"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

type Add struct {
	Title     string
	Start     time.Time
	End       time.Time
	Developer string
	Type      task.Type
	Priority  task.Priority
	Status    task.Status

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	t := task.New(n.Title, n.Start, n.End)
	t.AssignedDeveloperID = n.Developer
	if n.Type != task.TypeAny {
		t.Type = n.Type
	}
	if n.Priority != "" {
		t.Priority = n.Priority
	}
	if n.Status != "" {
		t.Status = n.Status
	}

	if err := n.Persistence.StoreTask(t); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("added")
	pp.Tasks(t)
	return nil
}
