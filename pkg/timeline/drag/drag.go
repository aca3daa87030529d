// Package drag converts drop gestures on the timeline into new task dates.
package drag

import (
	"math"
	"time"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
)

// DropGeometry is a raw pointer sample taken when a task bar is released:
// the pointer's x position plus the timeline container's left edge and
// width, all in the same pixel space.
type DropGeometry struct {
	PointerX       float64
	ContainerLeft  float64
	ContainerWidth float64
}

// Fraction normalizes the sample to a 0..1 position across the container.
// ok is false when the container width is unknown or zero, which callers
// must treat as "the drag produced no meaningful result".
func (g DropGeometry) Fraction() (float64, bool) {
	if g.ContainerWidth <= 0 {
		return 0, false
	}
	f := (g.PointerX - g.ContainerLeft) / g.ContainerWidth
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return f, true
}

// Proposal is a new inclusive date range for a dragged task. The duration
// always matches the task's original duration in units of the active view.
type Proposal struct {
	Start time.Time
	End   time.Time
}

// Reschedule maps a drop sample onto new dates for t against the visible
// window. The second return is false when the geometry is unusable or the
// window is empty; nothing is mutated in either case.
func Reschedule(t *task.Task, geom DropGeometry, rng timeline.Range, view timeline.ViewType) (Proposal, bool) {
	f, ok := geom.Fraction()
	if !ok {
		return Proposal{}, false
	}
	return ProposalAt(t, f, rng, view)
}

// ProposalAt is the normalized-coordinate core of Reschedule: fraction is
// an already-clamped 0..1 position across the unit window. Snap-to-grid:
// the proposal always starts on a unit boundary.
func ProposalAt(t *task.Task, fraction float64, rng timeline.Range, view timeline.ViewType) (Proposal, bool) {
	if rng.Len() == 0 {
		return Proposal{}, false
	}

	offset := UnitOffset(fraction, rng.Len())

	duration := view.UnitsBetween(t.Start.Time, t.End.Time)
	if maxOffset := rng.Len() - duration; offset > maxOffset {
		// Never allow the bar past the right edge of the window. The left
		// edge needs no twin: offsets are already clamped at zero.
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	start := rng.Units[offset]
	return Proposal{
		Start: start,
		End:   view.StepN(start, duration-1),
	}, true
}

// UnitOffset converts a 0..1 fraction into an index-like unit offset,
// rounded to the nearest boundary and clamped at zero.
func UnitOffset(fraction float64, unitCount int) int {
	offset := int(math.Round(fraction * float64(unitCount)))
	if offset < 0 {
		return 0
	}
	return offset
}

// Preview describes where a drop at the hovered position would land. It is
// advisory feedback for rendering a drag ghost; only the final Reschedule
// carries a correctness contract.
type Preview struct {
	Offset int
	Span   int
}

// PreviewAt computes the drag ghost for a hover fraction. ok is false when
// the window is empty.
func PreviewAt(t *task.Task, fraction float64, rng timeline.Range, view timeline.ViewType) (Preview, bool) {
	p, ok := ProposalAt(t, fraction, rng, view)
	if !ok {
		return Preview{}, false
	}
	offset := 0
	for i, u := range rng.Units {
		if u.Equal(p.Start) {
			offset = i
			break
		}
	}
	return Preview{
		Offset: offset,
		Span:   view.UnitsBetween(p.Start, p.End),
	}, true
}
