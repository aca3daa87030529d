package printers

import (
	"testing"
	"time"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
)

func TestBarSpanClipsToWindow(t *testing.T) {
	now := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	rng := timeline.ComputeRange(timeline.ViewDay, 2025, now)

	mk := func(start, end string) *task.Task {
		s, _ := task.ParseDate(start)
		e, _ := task.ParseDate(end)
		return task.New("t", s, e)
	}

	from, to, ok := barSpan(rng, mk("2025-01-01", "2025-01-03"))
	if !ok || from != 0 || to != 2 {
		t.Fatalf("jan 1-3: got %d..%d ok=%v", from, to, ok)
	}

	// Straddling the left edge clips to the first unit.
	from, to, ok = barSpan(rng, mk("2024-12-28", "2025-01-02"))
	if !ok || from != 0 || to != 1 {
		t.Fatalf("straddle left: got %d..%d ok=%v", from, to, ok)
	}

	// Straddling the right edge clips to the last unit.
	from, to, ok = barSpan(rng, mk("2025-12-30", "2026-01-04"))
	if !ok || from != 363 || to != 364 {
		t.Fatalf("straddle right: got %d..%d ok=%v", from, to, ok)
	}

	if _, _, ok := barSpan(rng, mk("2024-06-01", "2024-06-05")); ok {
		t.Fatalf("fully outside the window must not produce a bar")
	}
}
