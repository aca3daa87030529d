package conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/schedule"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
)

type Conflicts struct {
	ShowID    bool
	Developer string

	Persistence store.Persistence
}

func (n *Conflicts) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not detect conflicts, no persistence")
	}

	svc := schedule.New(n.Persistence)
	if err := svc.Refresh(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Developer != "" {
		pp.Title("conflicts for " + n.Developer)
		if c, ok := svc.ConflictsFor(n.Developer); ok {
			pp.Conflicts(c)
		} else {
			pp.Conflicts()
		}
		return nil
	}

	pp.Title("conflicts")
	pp.Conflicts(svc.Conflicts()...)
	return nil
}
