package ui

import (
	"context"
	"errors"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/schedule"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/tui/timelineui"
)

type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start ui, no persistence")
	}
	svc := schedule.New(n.Persistence)
	return timelineui.Run(svc)
}
