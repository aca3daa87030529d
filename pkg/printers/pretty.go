package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/team"
	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/conflict"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		sym, pri, title, start, end := t.Row()
		if pp.ShowID {
			tbl.AddRow(y.Sprint(t.ID), sym, pri, title, start, end, t.AssignedDeveloperID)
		} else {
			tbl.AddRow(sym, pri, title, start, end, t.AssignedDeveloperID)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) Developers(developers ...team.Developer) {
	if len(developers) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range developers {
		tbl.AddRow(d.ID, d.Name, d.Role)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Conflicts renders one block per conflicted developer: the summary line
// followed by the overlapping tasks.
func (pp *PrettyPrint) Conflicts(conflicts ...conflict.Conflict) {
	if len(conflicts) == 0 {
		f := color.New(color.FgGreen, color.Italic)
		_, _ = f.Print(" no conflicts\n\n")
		return
	}

	warn := color.New(color.FgHiRed, color.Bold)
	for _, c := range conflicts {
		_, _ = warn.Printf("▲ %s\n", c.Summary)
		pp.Tasks(c.Tasks...)
	}
}
