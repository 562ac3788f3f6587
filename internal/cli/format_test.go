package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "£0.00"},
		{2900.5, "£2,900.50"},
		{1234567.89, "£1,234,567.89"},
		{-45, "-£45.00"},
		{999.999, "£1,000.00"},
	}
	for _, tt := range tests {
		if got := FormatMoney("£", tt.v); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}

	if got := FormatMoney("€", 10); got != "€10.00" {
		t.Errorf("euro symbol: %q", got)
	}
}

func TestFormatDelta(t *testing.T) {
	if got := FormatDelta("£", 25); got != "+£25.00" {
		t.Errorf("positive delta = %q", got)
	}
	if got := FormatDelta("£", -25); got != "-£25.00" {
		t.Errorf("negative delta = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-01-05"); got != "Fri 5 Jan" {
		t.Errorf("FormatDate = %q, want %q", got, "Fri 5 Jan")
	}
	if got := FormatDate("garbage"); got != "garbage" {
		t.Errorf("invalid date should pass through, got %q", got)
	}
	if got := FormatDateLong("2024-01-05"); got != "5 Jan 2024" {
		t.Errorf("FormatDateLong = %q", got)
	}
	if got := FormatMonth("2024-02"); got != "Feb 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
}

func TestRenderSparklineSpansNegatives(t *testing.T) {
	s := RenderSparkline([]float64{-100, 0, 100})
	if len([]rune(s)) != 3 {
		t.Fatalf("sparkline runes = %q", s)
	}
	runes := []rune(s)
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("sparkline scaling off: %q", s)
	}

	flat := RenderSparkline([]float64{5, 5, 5})
	if len([]rune(flat)) != 3 {
		t.Errorf("flat sparkline = %q", flat)
	}
}
