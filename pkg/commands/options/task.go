// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/task"
)

// TaskOptions captures the flags describing a task.
type TaskOptions struct {
	StartString string
	EndString   string
	Developer   string
	TypeString  string
	Priority    string
	Status      string
}

// AddTaskArgs wires task-describing flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`Start date, example: --start="2025-03-10".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`End date (inclusive), example: --end="2025-03-12".`)
	cmd.Flags().StringVarP(&o.Developer, "developer", "d", "",
		"Assign the task to a developer id.")
	cmd.Flags().StringVarP(&o.TypeString, "type", "t", "task",
		"Task type: epic, story, task, subtask, or bug.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: low, medium, high, or critical.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Status: planned, in-progress, done, or blocked.")
}

// GetDates parses the start/end flags. A missing end date defaults to the
// start date (a one-day task).
func (o *TaskOptions) GetDates() (time.Time, time.Time, error) {
	start, err := task.ParseDate(o.StartString)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if o.EndString == "" {
		return start, start, nil
	}
	end, err := task.ParseDate(o.EndString)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// GetType resolves the task type flag.
func (o *TaskOptions) GetType() (task.Type, error) {
	return task.ParseType(o.TypeString)
}
