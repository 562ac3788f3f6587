package components

import (
	"strings"
	"testing"

	"clearahead/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tt := range []struct{ total, n int }{
		{100, 4}, {101, 4}, {80, 3}, {7, 2},
	} {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))

	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")

	if len(lines) != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", len(lines), tallLines)
	}
}

func TestSparklineSpansNegatives(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := Sparkline([]float64{-100, 0, 100}, theme.Active.Accent)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("expected full block range across a negative-to-positive series, got %q", out)
	}

	// A flat series renders mid-height blocks, not a panic or empty string
	flat := Sparkline([]float64{50, 50, 50}, theme.Active.Accent)
	if !strings.Contains(flat, "▅") {
		t.Errorf("flat series = %q, want mid blocks", flat)
	}
}
