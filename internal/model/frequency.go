package model

// Frequency is the closed set of recurrence rules an obligation can carry.
type Frequency string

const (
	Weekly           Frequency = "weekly"
	Fortnightly      Frequency = "fortnightly"
	FourWeekly       Frequency = "four_weekly"
	Monthly          Frequency = "monthly"
	LastDayOfMonth   Frequency = "last_day_of_month"
	LastFridayOfMonth Frequency = "last_friday_of_month"
)

// DefaultPeriodDays is the fallback period for unrecognized frequency
// strings. Unknown values degrade to a 30-day cycle instead of erroring.
const DefaultPeriodDays = 30

// periodDays is the single policy table for fixed-day-count frequencies.
// Month-based frequencies advance by calendar months, not day counts.
var periodDays = map[Frequency]int{
	Weekly:      7,
	Fortnightly: 14,
	FourWeekly:  28,
}

// PeriodDays returns the advance step in days for fixed-step frequencies,
// or DefaultPeriodDays for anything unrecognized.
func (f Frequency) PeriodDays() int {
	if d, ok := periodDays[f]; ok {
		return d
	}
	return DefaultPeriodDays
}

// MonthBased reports whether f advances by calendar months rather than a
// fixed day count.
func (f Frequency) MonthBased() bool {
	return f == Monthly || f.SpecialMonthly()
}

// SpecialMonthly reports whether f resolves to a derived date within each
// month (last day, last Friday) instead of a fixed day-of-month.
func (f Frequency) SpecialMonthly() bool {
	return f == LastDayOfMonth || f == LastFridayOfMonth
}

// Known reports whether f is one of the supported frequencies.
func (f Frequency) Known() bool {
	switch f {
	case Weekly, Fortnightly, FourWeekly, Monthly, LastDayOfMonth, LastFridayOfMonth:
		return true
	}
	return false
}

// Frequencies lists the supported values in display order.
var Frequencies = []Frequency{
	Weekly, Fortnightly, FourWeekly, Monthly, LastDayOfMonth, LastFridayOfMonth,
}

// FrequencyLabel returns a human-readable name for a frequency value.
func FrequencyLabel(f Frequency) string {
	switch f {
	case Weekly:
		return "Weekly"
	case Fortnightly:
		return "Fortnightly"
	case FourWeekly:
		return "Every 4 weeks"
	case Monthly:
		return "Monthly"
	case LastDayOfMonth:
		return "Last day of month"
	case LastFridayOfMonth:
		return "Last Friday of month"
	}
	return string(f)
}
