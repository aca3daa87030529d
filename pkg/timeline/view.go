// Package timeline computes the visible calendar-unit windows the release
// plan is laid out against.
package timeline

import (
	"fmt"
	"time"
)

// ViewType selects the granularity of the timeline.
type ViewType string

const (
	ViewDay   ViewType = "day"
	ViewWeek  ViewType = "week"
	ViewMonth ViewType = "month"
	ViewYear  ViewType = "year"
)

// Views lists the supported view types in zoom order.
func Views() []ViewType {
	return []ViewType{ViewDay, ViewWeek, ViewMonth, ViewYear}
}

// ParseView resolves a view type from user input.
func ParseView(v string) (ViewType, error) {
	switch ViewType(v) {
	case ViewDay, ViewWeek, ViewMonth, ViewYear:
		return ViewType(v), nil
	case "":
		return ViewDay, nil
	}
	return ViewDay, fmt.Errorf("unknown view type %q", v)
}

// ViewConfig carries rendering hints for a view. UnitWidth is the nominal
// width of one unit in pixels (or cells); it has no scheduling meaning.
type ViewConfig struct {
	UnitWidth int
	UnitLabel string
}

// ConfigFor returns the rendering hints for the view.
func ConfigFor(v ViewType) ViewConfig {
	switch v {
	case ViewWeek:
		return ViewConfig{UnitWidth: 60, UnitLabel: "week"}
	case ViewMonth:
		return ViewConfig{UnitWidth: 90, UnitLabel: "month"}
	case ViewYear:
		return ViewConfig{UnitWidth: 120, UnitLabel: "year"}
	default:
		return ViewConfig{UnitWidth: 30, UnitLabel: "day"}
	}
}

// Step advances t by exactly one unit of the view.
func (v ViewType) Step(t time.Time) time.Time {
	switch v {
	case ViewWeek:
		return t.AddDate(0, 0, 7)
	case ViewMonth:
		return t.AddDate(0, 1, 0)
	case ViewYear:
		return t.AddDate(1, 0, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

// StepN advances t by n units of the view. Negative n steps backwards.
func (v ViewType) StepN(t time.Time, n int) time.Time {
	switch v {
	case ViewWeek:
		return t.AddDate(0, 0, 7*n)
	case ViewMonth:
		return t.AddDate(0, n, 0)
	case ViewYear:
		return t.AddDate(n, 0, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

// Truncate returns the start of the unit containing t. Weeks start on
// Monday.
func (v ViewType) Truncate(t time.Time) time.Time {
	switch v {
	case ViewWeek:
		return mondayOf(t)
	case ViewMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case ViewYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// UnitsBetween counts the units spanned by the inclusive range [a, b] at
// the view's granularity. a and b on the same unit count as 1.
func (v ViewType) UnitsBetween(a, b time.Time) int {
	ua := v.Truncate(a)
	ub := v.Truncate(b)
	switch v {
	case ViewWeek:
		return int(ub.Sub(ua).Hours()/(24*7)) + 1
	case ViewMonth:
		return (ub.Year()-ua.Year())*12 + int(ub.Month()-ua.Month()) + 1
	case ViewYear:
		return ub.Year() - ua.Year() + 1
	default:
		return int(ub.Sub(ua).Hours()/24) + 1
	}
}

// Format renders a unit anchor the way the view labels it.
func (v ViewType) Format(t time.Time) string {
	switch v {
	case ViewWeek:
		return "wk " + t.Format("Jan 2")
	case ViewMonth:
		return t.Format("Jan 2006")
	case ViewYear:
		return t.Format("2006")
	default:
		return t.Format("Jan 2")
	}
}

// mondayOf truncates t to the Monday starting its week.
func mondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the week that started the previous Monday.
	}
	return day.AddDate(0, 0, -(wd - 1))
}
