package task

import (
	"fmt"
	"time"
)

// CurrentSchema is stamped on tasks when they are stored.
const CurrentSchema = "task/v1"

// Type classifies a task within the release plan.
type Type string

const (
	TypeEpic    Type = "epic"
	TypeStory   Type = "story"
	TypeTask    Type = "task"
	TypeSubtask Type = "subtask"
	TypeBug     Type = "bug"

	// TypeAny matches every type when filtering.
	TypeAny Type = ""
)

// Types lists the concrete task types in display order.
func Types() []Type {
	return []Type{TypeEpic, TypeStory, TypeTask, TypeSubtask, TypeBug}
}

// ParseType resolves a type from user input.
func ParseType(v string) (Type, error) {
	switch Type(v) {
	case TypeAny:
		return TypeAny, nil
	case TypeEpic, TypeStory, TypeTask, TypeSubtask, TypeBug:
		return Type(v), nil
	}
	return TypeAny, fmt.Errorf("unknown task type %q", v)
}

func (t Type) Symbol() string {
	switch t {
	case TypeEpic:
		return "◆"
	case TypeStory:
		return "●"
	case TypeSubtask:
		return "◦"
	case TypeBug:
		return "✗"
	default:
		return "▪"
	}
}

// Status tracks where a task is in its lifecycle.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

// Priority ranks a task for planning purposes.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Symbol() string {
	switch p {
	case PriorityCritical:
		return "!!"
	case PriorityHigh:
		return "!"
	default:
		return " "
	}
}

// New creates a task spanning the inclusive date range [start, end].
// Callers own the start ≤ end invariant; it is not re-checked here or
// anywhere downstream.
func New(title string, start, end time.Time) *Task {
	return &Task{
		Title:    title,
		Start:    On(start),
		End:      On(end),
		Type:     TypeTask,
		Status:   StatusPlanned,
		Priority: PriorityMedium,
	}
}

// Task is one schedulable item on the release timeline. Start and End are
// inclusive calendar dates.
type Task struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`

	Start Date `json:"start"`
	End   Date `json:"end"`

	AssignedDeveloperID string `json:"assignedDeveloperId,omitempty"`

	Status   Status   `json:"status,omitempty"`
	Priority Priority `json:"priority,omitempty"`
	Type     Type     `json:"type,omitempty"`

	EpicID        string   `json:"epicId,omitempty"`
	DependencyIDs []string `json:"dependencyIds,omitempty"`

	Schema string `json:"schema,omitempty"`
}

// DurationDays is the inclusive day count of the task's date range.
func (t *Task) DurationDays() int {
	return int(t.End.Sub(t.Start.Time).Hours()/24) + 1
}

// Assigned reports whether the task belongs to a developer.
func (t *Task) Assigned() bool {
	return t.AssignedDeveloperID != ""
}

// Row returns the columns used by table printers.
func (t *Task) Row() (string, string, string, string, string) {
	return t.Type.Symbol(), t.Priority.Symbol(), t.Title,
		t.Start.String(), t.End.String()
}

func (t *Task) String() string {
	return fmt.Sprintf("%s %s  %s → %s", t.Type.Symbol(), t.Title, t.Start, t.End)
}
