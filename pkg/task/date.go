package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date layout used for task start/end dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date (no time-of-day component).
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Date is a calendar date. The time-of-day component is always midnight UTC;
// two Dates are on the same day iff they are equal.
type Date struct {
	time.Time
}

// On builds a Date from a time, discarding the time-of-day component.
func On(t time.Time) Date {
	return Date{Time: Midnight(t)}
}

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(DateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	var err error
	d.Time, err = ParseDate(v)
	return err
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}
