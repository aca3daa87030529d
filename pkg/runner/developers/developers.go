package developers

import (
	"context"
	"errors"
	"fmt"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/printers"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
)

// Developers lists the roster, or adds/removes one member when Name or
// Remove are set.
type Developers struct {
	Name   string
	Role   string
	Remove string

	Persistence store.Persistence
}

func (n *Developers) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not manage developers, no persistence")
	}

	if n.Remove != "" {
		return n.Persistence.DeleteDeveloper(n.Remove)
	}

	if n.Name != "" {
		d := &team.Developer{Name: n.Name, Role: n.Role}
		if err := n.Persistence.StoreDeveloper(d); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	all := n.Persistence.ListDevelopers(ctx)
	pp.TitleWithCount("developers", len(all))
	pp.Developers(all...)
	return nil
}
