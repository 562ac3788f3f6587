package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain integer", "2900", 2900, true},
		{"comma thousands", "2,900", 2900, true},
		{"dot three digits is thousands", "2.900", 2900, true},
		{"space thousands comma decimal", "2 900,50", 2900.50, true},
		{"comma thousands dot decimal", "2,900.50", 2900.50, true},
		{"dot thousands comma decimal", "2.900,50", 2900.50, true},
		{"currency symbol", "£2,900.50", 2900.50, true},
		{"euro symbol", "€1.234,56", 1234.56, true},
		{"nbsp grouping", "2 900,50", 2900.50, true},
		{"one decimal digit", "2.9", 2.9, true},
		{"two decimal digits", "12,50", 12.5, true},
		{"multiple separators", "1.234.567", 1234567, true},
		{"four digits after separator", "1.2345", 12345, true},
		{"leading minus", "-45.50", -45.5, true},
		{"inner minus stripped", "4-5", 45, true},
		{"trailing separator", "12.", 0, false},
		{"letters", "abc", 0, false},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"symbol only", "£", 0, false},
		{"zero is present", "0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMixedSeparatorsLastWins(t *testing.T) {
	// With both separators present, the one occurring last in the string
	// is the decimal separator.
	if got, _ := Parse("1,234.56"); got != 1234.56 {
		t.Errorf("Parse(1,234.56) = %v, want 1234.56", got)
	}
	if got, _ := Parse("1.234,56"); got != 1234.56 {
		t.Errorf("Parse(1.234,56) = %v, want 1234.56", got)
	}
}
