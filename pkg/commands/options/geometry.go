package options

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/shekhar992/smart-release-planner-sub003/pkg/timeline/drag"
)

// GeometryOptions captures a drop position, either as a normalized 0..1
// fraction across the timeline or as raw pointer/container pixels.
type GeometryOptions struct {
	Fraction float64
	PointerX float64
	Left     float64
	Width    float64
}

func AddGeometryArgs(cmd *cobra.Command, o *GeometryOptions) {
	cmd.Flags().Float64Var(&o.Fraction, "at", -1,
		"Drop position as a fraction of the timeline, example: --at=0.27.")
	cmd.Flags().Float64Var(&o.PointerX, "x", 0,
		"Pointer x position in pixels at drop.")
	cmd.Flags().Float64Var(&o.Left, "left", 0,
		"Timeline container left edge in pixels.")
	cmd.Flags().Float64Var(&o.Width, "width", 0,
		"Timeline container width in pixels.")
}

// HasFraction reports whether --at was given.
func (o *GeometryOptions) HasFraction() bool {
	return o.Fraction >= 0
}

// GetGeometry builds the raw drop sample from the pixel flags.
func (o *GeometryOptions) GetGeometry() (drag.DropGeometry, error) {
	if o.Width <= 0 {
		return drag.DropGeometry{}, errors.New("a positive --width is required without --at")
	}
	return drag.DropGeometry{
		PointerX:       o.PointerX,
		ContainerLeft:  o.Left,
		ContainerWidth: o.Width,
	}, nil
}
