// Package conflict finds tasks competing for the same developer's time.
package conflict

import (
	"fmt"
	"sort"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
)

// Conflict collects every task of one developer that overlaps at least one
// other task of the same developer. The set is a union of overlap
// participants, not a partition into pairwise-overlapping clusters: when A
// overlaps B and B overlaps C, all three are listed together even if A and
// C never touch.
type Conflict struct {
	DeveloperID string
	Tasks       []*task.Task
	Summary     string
}

// Overlaps reports whether two tasks' inclusive date ranges intersect.
// Touching endpoints count as overlap.
func Overlaps(a, b *task.Task) bool {
	return !a.Start.After(b.End.Time) && !b.Start.After(a.End.Time)
}

// Detect runs an all-pairs overlap scan per developer and returns one
// Conflict per developer with at least one overlapping pair. Tasks without
// an assignee are skipped. The result is rebuilt from scratch on every
// call; callers replace, never merge.
func Detect(tasks []*task.Task, developers []team.Developer) []Conflict {
	byDev := make(map[string][]*task.Task, len(developers))
	for _, t := range tasks {
		if !t.Assigned() {
			continue
		}
		byDev[t.AssignedDeveloperID] = append(byDev[t.AssignedDeveloperID], t)
	}

	names := make(map[string]string, len(developers))
	order := make([]string, 0, len(developers))
	for _, d := range developers {
		names[d.ID] = d.Name
		order = append(order, d.ID)
	}
	// Tasks may reference developers missing from the roster; scan those
	// groups too, after the known ones.
	for id := range byDev {
		if _, ok := names[id]; !ok {
			order = append(order, id)
		}
	}
	sort.Strings(order[len(developers):])

	var conflicts []Conflict
	for _, devID := range order {
		group := byDev[devID]
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			if group[i].Start.Equal(group[j].Start.Time) {
				return group[i].ID < group[j].ID
			}
			return group[i].Start.Before(group[j].Start.Time)
		})

		involved := make(map[string]bool, len(group))
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if Overlaps(group[i], group[j]) {
					involved[group[i].ID] = true
					involved[group[j].ID] = true
				}
			}
		}
		if len(involved) == 0 {
			continue
		}

		c := Conflict{DeveloperID: devID}
		for _, t := range group {
			if involved[t.ID] {
				c.Tasks = append(c.Tasks, t)
			}
		}
		c.Summary = summarize(names[devID], devID, c.Tasks)
		conflicts = append(conflicts, c)
	}
	return conflicts
}

func summarize(name, devID string, tasks []*task.Task) string {
	who := name
	if who == "" {
		who = devID
	}
	return fmt.Sprintf("%s has %d overlapping tasks", who, len(tasks))
}
