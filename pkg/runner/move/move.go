package move

import (
	"context"
	"errors"
	"fmt"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/schedule"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	tl "github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/drag"
)

// Move reschedules one task by a drop position, preserving its duration.
// Either Fraction (normalized 0..1) or Geometry (raw pixels) selects the
// target; Geometry wins when both are set.
type Move struct {
	ID       string
	View     tl.ViewType
	Year     int
	Fraction float64
	Geometry *drag.DropGeometry

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}

	svc := schedule.New(n.Persistence)
	svc.SetView(n.View)
	if n.Year != 0 {
		svc.SetYear(n.Year)
	}
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	var (
		moved *task.Task
		ok    bool
		err   error
	)
	if n.Geometry != nil {
		moved, ok, err = svc.Reschedule(ctx, n.ID, *n.Geometry)
	} else {
		moved, ok, err = svc.RescheduleAt(ctx, n.ID, n.Fraction)
	}
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no move: drop position unusable")
		return nil
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("moved")
	pp.Tasks(moved)

	if c, ok := svc.ConflictFor(n.ID); ok {
		pp.Conflicts(c)
	}
	return nil
}
