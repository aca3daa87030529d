package store

import (
	"context"
	"testing"
	"time"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestPersistenceWatchEmitsTaskChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	tk := task.New("ship the release notes", start, start.AddDate(0, 0, 2))
	if err := p.StoreTask(tk); err != nil {
		t.Fatalf("store task: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventTasksChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for task change event")
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	tk := task.New("wire the importer", start, start.AddDate(0, 0, 4))
	tk.AssignedDeveloperID = "d1"
	if err := p.StoreTask(tk); err != nil {
		t.Fatalf("store task: %v", err)
	}
	if tk.ID == "" {
		t.Fatalf("expected an id to be minted on store")
	}

	got, err := p.GetTask(ctx, tk.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != tk.Title || !got.Start.Equal(tk.Start.Time) || !got.End.Equal(tk.End.Time) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.AssignedDeveloperID != "d1" {
		t.Fatalf("assignee lost in round trip: %+v", got)
	}

	all := p.ListTasks(ctx)
	if len(all) != 1 {
		t.Fatalf("expected 1 task, got %d", len(all))
	}
}

func TestUpdateTaskDatesWritesDatesOnly(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	start := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	tk := task.New("stabilize the build", start, start.AddDate(0, 0, 2))
	tk.AssignedDeveloperID = "d1"
	tk.Priority = task.PriorityHigh
	if err := p.StoreTask(tk); err != nil {
		t.Fatalf("store task: %v", err)
	}

	newStart := time.Date(2025, time.April, 11, 0, 0, 0, 0, time.UTC)
	updated, err := p.UpdateTaskDates(ctx, tk.ID, newStart, newStart.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("update dates: %v", err)
	}
	if !updated.Start.Equal(newStart) {
		t.Fatalf("start not updated: %v", updated.Start)
	}
	if updated.AssignedDeveloperID != "d1" || updated.Priority != task.PriorityHigh {
		t.Fatalf("non-date fields must survive a reschedule: %+v", updated)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.GetTask(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
