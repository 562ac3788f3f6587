// Package dateutil provides calendar arithmetic on local wall-clock dates.
//
// All values are pinned to noon local time so that day arithmetic never
// slips across a daylight-saving boundary.
package dateutil

import (
	"time"
)

// ISO is the canonical date layout.
const ISO = "2006-01-02"

// Parse converts a YYYY-MM-DD string to a noon-local time.Time.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISO, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return noon(t), nil
}

// Format converts a time back to its YYYY-MM-DD form.
func Format(t time.Time) string {
	return t.Format(ISO)
}

// Valid reports whether s is a well-formed, real calendar date. The
// round-trip requirement rejects shapes like 2024-2-5 as well as
// impossible dates like 2024-02-30.
func Valid(s string) bool {
	if len(s) != 10 {
		return false
	}
	t, err := Parse(s)
	if err != nil {
		return false
	}
	return Format(t) == s
}

// Today returns the current local date as YYYY-MM-DD.
func Today() string {
	return Format(time.Now())
}

// AddDays advances t by n calendar days (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return noon(t.AddDate(0, 0, n))
}

// AddMonthsSameDay advances t by n calendar months, preserving the
// day-of-month and clamping to the last day of shorter target months
// (Jan 31 + 1 month is Feb 28, or Feb 29 in a leap year).
func AddMonthsSameDay(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 12, 0, 0, 0, time.Local)
	day := t.Day()
	if last := daysIn(first); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 12, 0, 0, 0, time.Local)
}

// LastDayOfMonth returns the final day of t's month.
func LastDayOfMonth(t time.Time) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 12, 0, 0, 0, time.Local)
	return time.Date(first.Year(), first.Month(), daysIn(first), 12, 0, 0, 0, time.Local)
}

// LastFridayOfMonth walks back from month-end to the nearest Friday.
func LastFridayOfMonth(t time.Time) time.Time {
	d := LastDayOfMonth(t)
	for d.Weekday() != time.Friday {
		d = AddDays(d, -1)
	}
	return d
}

// DaysBetween returns the absolute whole-day distance between two dates.
func DaysBetween(a, b time.Time) int {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return int(d.Hours() / 24)
}

// DaysUntil returns the signed whole-day count from a to b, rounded up.
// A target later the same day counts as zero.
func DaysUntil(a, b time.Time) int {
	hours := b.Sub(a).Hours()
	days := int(hours / 24)
	if hours > float64(days)*24 {
		days++
	}
	return days
}

// daysIn returns the number of days in t's month.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 12, 0, 0, 0, time.Local).Day()
}

func noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
}
