package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
)

const laneWidth = 20 // label column before the unit strip

// Timeline prints the unit window as one row per developer lane, one cell
// per unit, with task bars filled in and today's unit highlighted.
func (pp *PrettyPrint) Timeline(rng timeline.Range, tasks []*task.Task, developers []team.Developer) {
	header := color.New(color.FgWhite, color.Italic)
	_, _ = header.Printf("%s%s → %s (%d %ss)\n",
		strings.Repeat(" ", laneWidth),
		rng.View.Format(rng.Start), rng.View.Format(rng.End),
		rng.Len(), timeline.ConfigFor(rng.View).UnitLabel)

	pp.axis(rng)

	lanes := map[string][]*task.Task{}
	for _, t := range tasks {
		lanes[t.AssignedDeveloperID] = append(lanes[t.AssignedDeveloperID], t)
	}

	for _, d := range developers {
		pp.lane(rng, d.Name, lanes[d.ID])
		delete(lanes, d.ID)
	}
	if rest := lanes[""]; len(rest) > 0 {
		pp.lane(rng, "(unassigned)", rest)
	}
	fmt.Println("")
}

// axis prints the unit strip itself with a marker under today.
func (pp *PrettyPrint) axis(rng timeline.Range) {
	faint := color.New(color.Faint)
	today := color.New(color.Bold, color.FgHiWhite)

	fmt.Print(strings.Repeat(" ", laneWidth))
	for i := range rng.Units {
		if i == rng.TodayIndex {
			_, _ = today.Print("┬")
			continue
		}
		_, _ = faint.Print("·")
	}
	fmt.Print("\n")
}

func (pp *PrettyPrint) lane(rng timeline.Range, label string, tasks []*task.Task) {
	name := label
	if len(name) > laneWidth-2 {
		name = name[:laneWidth-2]
	}
	fmt.Printf("%-*s", laneWidth, name)

	cells := make([]int, rng.Len())
	for _, t := range tasks {
		from, to, ok := barSpan(rng, t)
		if !ok {
			continue
		}
		for i := from; i <= to; i++ {
			cells[i]++
		}
	}

	bar := color.New(color.FgCyan)
	hot := color.New(color.FgHiRed, color.Bold)
	faint := color.New(color.Faint)
	for _, n := range cells {
		switch {
		case n == 0:
			_, _ = faint.Print("·")
		case n == 1:
			_, _ = bar.Print("█")
		default:
			// Overlapping bars in one lane are exactly the conflict case.
			_, _ = hot.Print("█")
		}
	}
	fmt.Print("\n")
}

// barSpan clips a task's date range onto the unit window, returning the
// inclusive unit indexes it covers. ok is false when the task lies fully
// outside the window.
func barSpan(rng timeline.Range, t *task.Task) (int, int, bool) {
	if rng.Len() == 0 {
		return 0, 0, false
	}
	view := rng.View
	first := rng.Units[0]
	last := rng.Units[rng.Len()-1]

	start := view.Truncate(t.Start.Time)
	end := view.Truncate(t.End.Time)
	if end.Before(first) || start.After(last) {
		return 0, 0, false
	}

	from := 0
	if start.After(first) {
		from = view.UnitsBetween(first, start) - 1
	}
	to := rng.Len() - 1
	if end.Before(last) {
		to = view.UnitsBetween(first, end) - 1
	}
	return from, to, true
}
