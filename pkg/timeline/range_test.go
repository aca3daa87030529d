package timeline

import (
	"testing"
	"time"
)

// fixedNow is a Wednesday.
var fixedNow = time.Date(2025, time.March, 12, 15, 4, 5, 0, time.UTC)

func TestComputeRangeDayView(t *testing.T) {
	r := ComputeRange(ViewDay, 2025, fixedNow)

	if got := r.Len(); got != 365 {
		t.Fatalf("expected 365 day units for 2025, got %d", got)
	}
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !r.Start.Equal(want) {
		t.Fatalf("unexpected start: %v", r.Start)
	}
	if want := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC); !r.End.Equal(want) {
		t.Fatalf("unexpected end: %v", r.End)
	}
	if r.TodayIndex == TodayNotInRange {
		t.Fatalf("today should be inside its own year")
	}
	if got := r.Units[r.TodayIndex]; !got.Equal(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("units[todayIndex] = %v, want today's date", got)
	}
}

func TestComputeRangeDayViewLeapYear(t *testing.T) {
	r := ComputeRange(ViewDay, 2024, fixedNow)
	if got := r.Len(); got != 366 {
		t.Fatalf("expected 366 day units for 2024, got %d", got)
	}
}

func TestComputeRangeDayViewOtherYear(t *testing.T) {
	for _, year := range []int{2023, 2024, 2026} {
		r := ComputeRange(ViewDay, year, fixedNow)
		if r.TodayIndex != TodayNotInRange {
			t.Fatalf("year %d: expected todayIndex sentinel, got %d", year, r.TodayIndex)
		}
	}
}

func TestComputeRangeWeekView(t *testing.T) {
	// selectedYear must not matter for the week view.
	r := ComputeRange(ViewWeek, 1999, fixedNow)

	if got := r.Len(); got != 52 {
		t.Fatalf("expected 52 week units, got %d", got)
	}
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if want := monday.AddDate(0, 0, -7*12); !r.Start.Equal(want) {
		t.Fatalf("start = %v, want Monday 12 weeks back (%v)", r.Start, want)
	}
	if r.Start.Weekday() != time.Monday {
		t.Fatalf("week units must start on Monday, got %v", r.Start.Weekday())
	}
	if r.End.Weekday() != time.Sunday {
		t.Fatalf("week window must close on Sunday, got %v", r.End.Weekday())
	}
	if r.TodayIndex != 12 {
		t.Fatalf("today should sit 12 weeks in, got index %d", r.TodayIndex)
	}
	if !r.Units[r.TodayIndex].Equal(monday) {
		t.Fatalf("units[todayIndex] = %v, want %v", r.Units[r.TodayIndex], monday)
	}
}

func TestComputeRangeMonthView(t *testing.T) {
	r := ComputeRange(ViewMonth, 0, fixedNow)
	if got := r.Len(); got != 25 {
		t.Fatalf("expected 25 month units, got %d", got)
	}
	if r.TodayIndex != 12 {
		t.Fatalf("current month should be centered, got index %d", r.TodayIndex)
	}
	if got := r.Units[r.TodayIndex]; got.Month() != time.March || got.Year() != 2025 {
		t.Fatalf("unexpected today unit: %v", got)
	}
}

func TestComputeRangeYearView(t *testing.T) {
	r := ComputeRange(ViewYear, 0, fixedNow)
	if got := r.Len(); got != 11 {
		t.Fatalf("expected 11 year units, got %d", got)
	}
	if r.TodayIndex != 5 {
		t.Fatalf("current year should be centered, got index %d", r.TodayIndex)
	}
}

func TestComputeRangeUnitsAreGapFree(t *testing.T) {
	for _, view := range Views() {
		r := ComputeRange(view, 2025, fixedNow)
		for i := 1; i < r.Len(); i++ {
			if want := view.Step(r.Units[i-1]); !r.Units[i].Equal(want) {
				t.Fatalf("%s view: unit %d is %v, want %v", view, i, r.Units[i], want)
			}
		}
	}
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.March, 16, 23, 0, 0, 0, time.UTC), time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)}, // Sunday
	}
	for _, c := range cases {
		if got := mondayOf(c.in); !got.Equal(c.want) {
			t.Fatalf("mondayOf(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestUnitsBetween(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if got := ViewDay.UnitsBetween(day(2025, 3, 10), day(2025, 3, 12)); got != 3 {
		t.Fatalf("day count = %d, want 3", got)
	}
	if got := ViewDay.UnitsBetween(day(2025, 3, 10), day(2025, 3, 10)); got != 1 {
		t.Fatalf("same-day count = %d, want 1", got)
	}
	if got := ViewWeek.UnitsBetween(day(2025, 3, 10), day(2025, 3, 23)); got != 2 {
		t.Fatalf("week count = %d, want 2", got)
	}
	// Friday to Monday crosses a week boundary even though only 3 days apart.
	if got := ViewWeek.UnitsBetween(day(2025, 3, 14), day(2025, 3, 17)); got != 2 {
		t.Fatalf("cross-boundary week count = %d, want 2", got)
	}
	if got := ViewMonth.UnitsBetween(day(2024, 11, 20), day(2025, 2, 2)); got != 4 {
		t.Fatalf("month count = %d, want 4", got)
	}
	if got := ViewYear.UnitsBetween(day(2023, 6, 1), day(2025, 1, 1)); got != 3 {
		t.Fatalf("year count = %d, want 3", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := ComputeRange(ViewDay, 2025, fixedNow)
	if !r.Contains(time.Date(2025, time.June, 15, 13, 0, 0, 0, time.UTC)) {
		t.Fatalf("mid-year date should be in range")
	}
	if r.Contains(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("next year should be out of range")
	}
}

func TestParseView(t *testing.T) {
	for _, v := range Views() {
		got, err := ParseView(string(v))
		if err != nil || got != v {
			t.Fatalf("ParseView(%q) = %v, %v", v, got, err)
		}
	}
	if _, err := ParseView("fortnight"); err == nil {
		t.Fatalf("expected error for unknown view")
	}
}
