package timeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/schedule"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	tl "github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
)

type Timeline struct {
	View tl.ViewType
	Year int

	Persistence store.Persistence
}

func (n *Timeline) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show timeline, no persistence")
	}

	svc := schedule.New(n.Persistence)
	svc.SetView(n.View)
	if n.Year != 0 {
		svc.SetYear(n.Year)
	}
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Timeline(svc.Range(), svc.Tasks(), svc.Developers())

	if conflicts := svc.Conflicts(); len(conflicts) > 0 {
		pp.Conflicts(conflicts...)
	}
	return nil
}
