package timeline

import "time"

// Week, month, and year views float around the present rather than the
// selected year: weeks span 52 starting 12 weeks back, months 12 back and
// 12 forward, years 5 back and 5 forward.
const (
	weeksBack    = 12
	weeksTotal   = 52
	monthsAround = 12
	yearsAround  = 5
)

// TodayNotInRange is the TodayIndex sentinel for "today falls outside the
// visible window". Callers treat it as "cannot scroll to today", not as an
// error.
const TodayNotInRange = -1

// Range is an ordered, gap-free sequence of unit anchors spanning a
// visible window. Adjacent units differ by exactly one view step.
type Range struct {
	View  ViewType
	Start time.Time
	End   time.Time

	// Units holds the start of every unit in the window, strictly
	// increasing.
	Units []time.Time

	// TodayIndex locates the unit containing "today", or TodayNotInRange.
	TodayIndex int
}

// Len is the number of units in the window.
func (r Range) Len() int {
	return len(r.Units)
}

// Contains reports whether t falls inside the inclusive window.
func (r Range) Contains(t time.Time) bool {
	d := r.View.Truncate(t)
	return !d.Before(r.Start) && !d.After(r.View.Truncate(r.End))
}

// ComputeRange maps a view type and anchor onto the concrete unit window.
// The day view spans the selected year exactly; the other views ignore
// selectedYear and center a fixed window on now. now is explicit so tests
// can pin it. ComputeRange never fails: an anchor that excludes today just
// yields TodayIndex == TodayNotInRange.
func ComputeRange(view ViewType, selectedYear int, now time.Time) Range {
	today := view.Truncate(now)

	var start, end time.Time
	switch view {
	case ViewWeek:
		start = today.AddDate(0, 0, -7*weeksBack)
		end = start.AddDate(0, 0, 7*weeksTotal-1) // Sunday closing the final week
	case ViewMonth:
		start = today.AddDate(0, -monthsAround, 0)
		end = today.AddDate(0, monthsAround+1, -1)
	case ViewYear:
		start = today.AddDate(-yearsAround, 0, 0)
		end = today.AddDate(yearsAround+1, 0, -1)
	default:
		start = time.Date(selectedYear, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(selectedYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	r := Range{
		View:       view,
		Start:      start,
		End:        end,
		TodayIndex: TodayNotInRange,
	}

	dayAnchor := ViewDay.Truncate(now)
	for u := start; !u.After(end); u = view.Step(u) {
		if r.TodayIndex == TodayNotInRange &&
			!dayAnchor.Before(u) && dayAnchor.Before(view.Step(u)) {
			r.TodayIndex = len(r.Units)
		}
		r.Units = append(r.Units, u)
	}
	return r
}
