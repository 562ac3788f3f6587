package dateutil

import (
	"testing"
	"time"
)

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-05", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-2-5", false},
		{"2024-13-01", false},
		{"05-01-2024", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		if got := Valid(tt.in); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-03-31")
	if err != nil {
		t.Fatal(err)
	}
	if d.Hour() != 12 {
		t.Errorf("parsed hour = %d, want 12", d.Hour())
	}
	if got := Format(d); got != "2024-03-31" {
		t.Errorf("round trip = %q", got)
	}
}

func TestAddDaysAcrossDSTBoundary(t *testing.T) {
	// 2024-03-31 is the UK spring-forward date; noon pinning keeps day
	// arithmetic stable regardless of the local zone.
	d, _ := Parse("2024-03-30")
	got := Format(AddDays(d, 2))
	if got != "2024-04-01" {
		t.Errorf("AddDays over DST = %q, want 2024-04-01", got)
	}
}

func TestAddMonthsSameDay(t *testing.T) {
	tests := []struct {
		start  string
		months int
		want   string
	}{
		{"2024-01-05", 1, "2024-02-05"},
		{"2024-01-31", 1, "2024-02-29"},
		{"2023-01-31", 1, "2023-02-28"},
		{"2024-01-31", 3, "2024-04-30"},
		{"2024-11-15", 2, "2025-01-15"},
		{"2024-03-31", -1, "2024-02-29"},
	}
	for _, tt := range tests {
		d, _ := Parse(tt.start)
		if got := Format(AddMonthsSameDay(d, tt.months)); got != tt.want {
			t.Errorf("AddMonthsSameDay(%s, %d) = %q, want %q", tt.start, tt.months, got, tt.want)
		}
	}
}

func TestLastDayOfMonth(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-02-10", "2024-02-29"},
		{"2023-02-10", "2023-02-28"},
		{"2024-04-01", "2024-04-30"},
		{"2024-12-25", "2024-12-31"},
	}
	for _, tt := range tests {
		d, _ := Parse(tt.in)
		if got := Format(LastDayOfMonth(d)); got != tt.want {
			t.Errorf("LastDayOfMonth(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLastFridayOfMonth(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-03-01", "2024-03-29"},
		{"2024-05-15", "2024-05-31"},
		{"2024-06-15", "2024-06-28"},
	}
	for _, tt := range tests {
		d, _ := Parse(tt.in)
		got := Format(LastFridayOfMonth(d))
		if got != tt.want {
			t.Errorf("LastFridayOfMonth(%s) = %q, want %q", tt.in, got, tt.want)
		}
		if LastFridayOfMonth(d).Weekday() != time.Friday {
			t.Errorf("LastFridayOfMonth(%s) is not a Friday", tt.in)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a, _ := Parse("2024-01-01")
	b, _ := Parse("2024-01-31")
	if got := DaysBetween(a, b); got != 30 {
		t.Errorf("DaysBetween = %d, want 30", got)
	}
	if got := DaysBetween(b, a); got != 30 {
		t.Errorf("DaysBetween reversed = %d, want 30", got)
	}
}

func TestDaysUntil(t *testing.T) {
	a, _ := Parse("2024-01-01")
	b, _ := Parse("2024-01-08")
	if got := DaysUntil(a, b); got != 7 {
		t.Errorf("DaysUntil = %d, want 7", got)
	}
	if got := DaysUntil(a, a); got != 0 {
		t.Errorf("DaysUntil same day = %d, want 0", got)
	}
	if got := DaysUntil(b, a); got != -7 {
		t.Errorf("DaysUntil backwards = %d, want -7", got)
	}
}
