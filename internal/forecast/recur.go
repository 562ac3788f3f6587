// Package forecast is the projection engine: recurrence expansion, goal
// planning, timeline building and confidence estimation. Everything here
// is a pure function of its inputs; the engine holds no state between
// calls and never touches storage or the network.
package forecast

import (
	"time"

	"clearahead/internal/dateutil"
	"clearahead/internal/model"
)

// fastForwardCap bounds recurrence fast-forwarding (~20 years of monthly
// periods) so a first occurrence far from the window can never loop
// unbounded. Hitting the cap fails open: expansion stops and whatever was
// collected is returned.
const fastForwardCap = 240

// Occurrences expands a recurrence into the dates it lands on within
// [windowStart, windowEnd], ascending and inclusive of both bounds.
// first is the anchor date (next payment or due date); an absent or
// invalid anchor yields no occurrences.
func Occurrences(windowStart time.Time, first string, freq model.Frequency, windowEnd time.Time) []time.Time {
	if !dateutil.Valid(first) {
		return nil
	}
	cursor, err := dateutil.Parse(first)
	if err != nil {
		return nil
	}
	if freq.SpecialMonthly() {
		cursor = specialMonthlyDate(cursor, freq)
	}

	for i := 0; cursor.Before(windowStart) && i < fastForwardCap; i++ {
		cursor = advance(cursor, freq)
	}

	var occ []time.Time
	for !cursor.After(windowEnd) {
		if !cursor.Before(windowStart) {
			occ = append(occ, cursor)
		}
		cursor = advance(cursor, freq)
	}
	return occ
}

// advance moves cursor forward one period. Month-based frequencies step
// by calendar months, re-resolving the special date each month; everything
// else steps by the frequency's fixed day count.
func advance(cursor time.Time, freq model.Frequency) time.Time {
	if freq.MonthBased() {
		next := dateutil.AddMonthsSameDay(cursor, 1)
		if freq.SpecialMonthly() {
			next = specialMonthlyDate(next, freq)
		}
		return next
	}
	return dateutil.AddDays(cursor, freq.PeriodDays())
}

func specialMonthlyDate(base time.Time, freq model.Frequency) time.Time {
	switch freq {
	case model.LastDayOfMonth:
		return dateutil.LastDayOfMonth(base)
	case model.LastFridayOfMonth:
		return dateutil.LastFridayOfMonth(base)
	}
	return base
}
