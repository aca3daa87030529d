package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline"
)

// ViewOptions captures the view type and anchor year flags.
type ViewOptions struct {
	ViewString string
	Year       int
}

// AddViewArgs wires view selection flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.ViewString, "view", "v", "day",
		"View granularity: day, week, month, or year.")
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Anchor year for the day view. Defaults to the current year.")
}

// GetView resolves the view flag.
func (o *ViewOptions) GetView() (timeline.ViewType, error) {
	return timeline.ParseView(o.ViewString)
}

// GetYear resolves the anchor year, defaulting to the current one.
func (o *ViewOptions) GetYear() int {
	if o.Year == 0 {
		return time.Now().Year()
	}
	return o.Year
}
