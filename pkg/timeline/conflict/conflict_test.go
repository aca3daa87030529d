package conflict

import (
	"testing"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
)

func mk(id, dev string, start, end string) *task.Task {
	s, err := task.ParseDate(start)
	if err != nil {
		panic(err)
	}
	e, err := task.ParseDate(end)
	if err != nil {
		panic(err)
	}
	t := task.New(id, s, e)
	t.ID = id
	t.AssignedDeveloperID = dev
	return t
}

var devs = []team.Developer{
	{ID: "d1", Name: "Asha"},
	{ID: "d2", Name: "Bo"},
}

func TestOverlapsSymmetry(t *testing.T) {
	a := mk("a", "d1", "2025-01-01", "2025-01-05")
	b := mk("b", "d1", "2025-01-04", "2025-01-10")
	c := mk("c", "d1", "2025-01-11", "2025-01-12")

	if !Overlaps(a, b) || !Overlaps(b, a) {
		t.Fatalf("overlap must be symmetric")
	}
	if Overlaps(a, c) || Overlaps(c, a) {
		t.Fatalf("disjoint ranges must not overlap")
	}
}

func TestOverlapsTouchingEndpoints(t *testing.T) {
	a := mk("a", "d1", "2025-01-01", "2025-01-05")
	b := mk("b", "d1", "2025-01-05", "2025-01-09")
	if !Overlaps(a, b) {
		t.Fatalf("shared endpoint must count as overlap")
	}
}

func TestDetectPairOverlap(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "d1", "2025-01-01", "2025-01-05"),
		mk("b", "d1", "2025-01-04", "2025-01-10"),
	}
	got := Detect(tasks, devs)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(got))
	}
	c := got[0]
	if c.DeveloperID != "d1" {
		t.Fatalf("unexpected developer: %s", c.DeveloperID)
	}
	if len(c.Tasks) != 2 {
		t.Fatalf("expected both tasks listed, got %d", len(c.Tasks))
	}
	if c.Summary == "" {
		t.Fatalf("expected a summary")
	}
}

func TestDetectNoOverlapNoRecord(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "d2", "2025-01-01", "2025-01-02"),
		mk("b", "d2", "2025-01-10", "2025-01-12"),
	}
	if got := Detect(tasks, devs); len(got) != 0 {
		t.Fatalf("expected no conflicts, got %d", len(got))
	}
}

// Chained overlaps collapse into one record: A-B overlap, B-C overlap, A-C
// do not, yet all three are reported together.
func TestDetectUnionSemantics(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "d1", "2025-01-01", "2025-01-05"),
		mk("b", "d1", "2025-01-05", "2025-01-10"),
		mk("c", "d1", "2025-01-10", "2025-01-15"),
	}
	got := Detect(tasks, devs)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(got))
	}
	if len(got[0].Tasks) != 3 {
		t.Fatalf("expected union {a,b,c}, got %d tasks", len(got[0].Tasks))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[0].Tasks[i].ID != want {
			t.Fatalf("task %d = %s, want %s (ordered by start)", i, got[0].Tasks[i].ID, want)
		}
	}
}

func TestDetectBystanderExcluded(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "d1", "2025-01-01", "2025-01-05"),
		mk("b", "d1", "2025-01-04", "2025-01-10"),
		mk("z", "d1", "2025-03-01", "2025-03-02"),
	}
	got := Detect(tasks, devs)
	if len(got) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(got))
	}
	for _, listed := range got[0].Tasks {
		if listed.ID == "z" {
			t.Fatalf("task with no overlapping pair must not be listed")
		}
	}
}

func TestDetectUnassignedExcluded(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "", "2025-01-01", "2025-01-05"),
		mk("b", "", "2025-01-04", "2025-01-10"),
	}
	if got := Detect(tasks, devs); len(got) != 0 {
		t.Fatalf("unassigned tasks must be excluded, got %d conflicts", len(got))
	}
}

func TestDetectPerDeveloperGrouping(t *testing.T) {
	// Overlapping dates across different developers are not a conflict.
	tasks := []*task.Task{
		mk("a", "d1", "2025-01-01", "2025-01-05"),
		mk("b", "d2", "2025-01-01", "2025-01-05"),
	}
	if got := Detect(tasks, devs); len(got) != 0 {
		t.Fatalf("cross-developer overlap must not conflict, got %d", len(got))
	}
}

func TestDetectUnknownDeveloperStillScanned(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "ghost", "2025-01-01", "2025-01-05"),
		mk("b", "ghost", "2025-01-03", "2025-01-06"),
	}
	got := Detect(tasks, devs)
	if len(got) != 1 {
		t.Fatalf("expected conflict for unknown developer id, got %d", len(got))
	}
	if got[0].DeveloperID != "ghost" {
		t.Fatalf("unexpected developer: %s", got[0].DeveloperID)
	}
}

func TestDetectRebuildsFreshResults(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "d1", "2025-01-01", "2025-01-05"),
		mk("b", "d1", "2025-01-04", "2025-01-10"),
	}
	first := Detect(tasks, devs)

	// Resolve the overlap and re-run; the old record must not linger.
	s, _ := task.ParseDate("2025-02-01")
	e, _ := task.ParseDate("2025-02-03")
	tasks[1].Start = task.On(s)
	tasks[1].End = task.On(e)

	second := Detect(tasks, devs)
	if len(first) != 1 || len(second) != 0 {
		t.Fatalf("expected 1 then 0 conflicts, got %d then %d", len(first), len(second))
	}
}
