// Package schedule wires the timeline window, conflict detection, and drag
// rescheduling together behind one service so UIs and CLIs can share logic.
package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/store"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/conflict"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/drag"
)

var ErrNoPersistence = errors.New("schedule: no persistence configured")

// Service owns the current view type and anchor year, recomputes the unit
// window when either changes, and keeps the conflict list consistent with
// the live task and developer collections. Tasks and developers are
// treated as read-only snapshots; date changes flow back through the
// persistence layer's single update entry point.
//
// Service is not safe for concurrent use. It is driven from a single
// UI-event loop, matching the one-at-a-time nature of drag gestures.
type Service struct {
	Persistence store.Persistence

	// Now supplies the clock for range computation so tests can pin it.
	// When nil, time.Now is used.
	Now func() time.Time

	view timeline.ViewType
	year int

	tasks      []*task.Task
	developers []team.Developer

	rng       timeline.Range
	conflicts []conflict.Conflict
}

// New builds a Service showing the day view of the year containing now.
func New(p store.Persistence) *Service {
	s := &Service{
		Persistence: p,
		view:        timeline.ViewDay,
	}
	s.year = s.now().Year()
	s.recomputeRange()
	return s
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// View returns the active view type.
func (s *Service) View() timeline.ViewType {
	return s.view
}

// Year returns the selected anchor year. Only the day view uses it.
func (s *Service) Year() int {
	return s.year
}

// SetView switches the timeline granularity and recomputes the window.
func (s *Service) SetView(v timeline.ViewType) {
	if v == s.view {
		return
	}
	s.view = v
	s.recomputeRange()
}

// SetYear selects the anchor year for the day view and recomputes the
// window.
func (s *Service) SetYear(year int) {
	if year == s.year {
		return
	}
	s.year = year
	s.recomputeRange()
}

// Range returns the current unit window.
func (s *Service) Range() timeline.Range {
	return s.rng
}

// Recompute rebuilds the unit window and the conflict list from current
// state. Useful after swapping the Now source or on day rollover.
func (s *Service) Recompute() {
	s.recomputeRange()
	s.recomputeConflicts()
}

func (s *Service) recomputeRange() {
	s.rng = timeline.ComputeRange(s.view, s.year, s.now())
}

// ScrollToToday reports the unit index to scroll to. ok is false when
// today lies outside the visible window, in which case callers disable the
// action rather than treating it as an error.
func (s *Service) ScrollToToday() (int, bool) {
	if s.rng.TodayIndex == timeline.TodayNotInRange {
		return 0, false
	}
	return s.rng.TodayIndex, true
}

// Tasks returns the current task snapshot.
func (s *Service) Tasks() []*task.Task {
	return s.tasks
}

// Developers returns the current developer snapshot.
func (s *Service) Developers() []team.Developer {
	return s.developers
}

// OnTasksChanged replaces the task snapshot and recomputes conflicts.
// This is the explicit invalidation hook: detection runs here and nowhere
// else, never per render.
func (s *Service) OnTasksChanged(tasks []*task.Task) {
	s.tasks = tasks
	s.recomputeConflicts()
}

// OnDevelopersChanged replaces the developer snapshot and recomputes
// conflicts.
func (s *Service) OnDevelopersChanged(developers []team.Developer) {
	s.developers = developers
	s.recomputeConflicts()
}

func (s *Service) recomputeConflicts() {
	s.conflicts = conflict.Detect(s.tasks, s.developers)
}

// Conflicts returns the conflict records from the latest detection pass.
func (s *Service) Conflicts() []conflict.Conflict {
	return s.conflicts
}

// ConflictsFor returns the conflict record for one developer, if any.
func (s *Service) ConflictsFor(developerID string) (conflict.Conflict, bool) {
	for _, c := range s.conflicts {
		if c.DeveloperID == developerID {
			return c, true
		}
	}
	return conflict.Conflict{}, false
}

// ConflictFor returns the conflict record a task participates in, if any.
func (s *Service) ConflictFor(taskID string) (conflict.Conflict, bool) {
	for _, c := range s.conflicts {
		for _, t := range c.Tasks {
			if t.ID == taskID {
				return c, true
			}
		}
	}
	return conflict.Conflict{}, false
}

// Refresh reloads the task and developer snapshots from persistence and
// recomputes conflicts.
func (s *Service) Refresh(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	s.tasks = s.Persistence.ListTasks(ctx)
	s.developers = s.Persistence.ListDevelopers(ctx)
	s.recomputeConflicts()
	return nil
}

// Watch subscribes to persistence change events so callers can feed them
// back into Refresh.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// RequestReschedule proposes new dates for a task. The service forwards
// every well-formed proposal to the persistence collaborator, which owns
// acceptance; only the dates are written. The snapshot and conflicts are
// refreshed afterwards.
func (s *Service) RequestReschedule(ctx context.Context, taskID string, newStart, newEnd time.Time) (*task.Task, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	t, err := s.Persistence.UpdateTaskDates(ctx, taskID, newStart, newEnd)
	if err != nil {
		return nil, err
	}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reschedule maps a drop gesture onto new dates for the task and commits
// them. The bool reports whether the drop produced a result; unusable
// geometry is a silent no-op, not an error.
func (s *Service) Reschedule(ctx context.Context, taskID string, geom drag.DropGeometry) (*task.Task, bool, error) {
	t := s.taskByID(taskID)
	if t == nil {
		return nil, false, errors.New("schedule: task not found")
	}
	p, ok := drag.Reschedule(t, geom, s.rng, s.view)
	if !ok {
		return nil, false, nil
	}
	updated, err := s.RequestReschedule(ctx, taskID, p.Start, p.End)
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

// RescheduleAt is Reschedule for an already-normalized 0..1 drop fraction.
func (s *Service) RescheduleAt(ctx context.Context, taskID string, fraction float64) (*task.Task, bool, error) {
	t := s.taskByID(taskID)
	if t == nil {
		return nil, false, errors.New("schedule: task not found")
	}
	p, ok := drag.ProposalAt(t, fraction, s.rng, s.view)
	if !ok {
		return nil, false, nil
	}
	updated, err := s.RequestReschedule(ctx, taskID, p.Start, p.End)
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

func (s *Service) taskByID(id string) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
