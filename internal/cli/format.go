// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"clearahead/internal/dateutil"
)

// FormatMoney formats an amount with the configured currency symbol,
// always showing pennies. e.g., 2900.5 -> "£2,900.50", -45 -> "-£45.00"
func FormatMoney(currency string, v float64) string {
	if math.Signbit(v) {
		return "-" + currency + groupThousands(-v)
	}
	return currency + groupThousands(v)
}

// FormatDelta formats a signed money movement with an explicit sign.
func FormatDelta(currency string, v float64) string {
	if v >= 0 {
		return "+" + FormatMoney(currency, v)
	}
	return FormatMoney(currency, v)
}

func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	if len(whole) <= 3 {
		return whole + frac
	}

	var b strings.Builder
	rem := len(whole) % 3
	if rem > 0 {
		b.WriteString(whole[:rem])
	}
	for i := rem; i < len(whole); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(whole[i : i+3])
	}
	return b.String() + frac
}

// FormatDate renders an ISO date as a short friendly form.
// e.g., "2024-01-05" -> "Fri 5 Jan". Invalid input passes through.
func FormatDate(iso string) string {
	d, err := dateutil.Parse(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%s %d %s", d.Weekday().String()[:3], d.Day(), d.Month().String()[:3])
}

// FormatDateLong renders an ISO date with the year.
// e.g., "2024-01-05" -> "5 Jan 2024".
func FormatDateLong(iso string) string {
	d, err := dateutil.Parse(iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%d %s %d", d.Day(), d.Month().String()[:3], d.Year())
}

// FormatMonth renders a YYYY-MM key as "Jan 2024".
func FormatMonth(key string) string {
	d, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", d.Month().String()[:3], d.Year())
}

// FormatWeeks pluralizes a week count.
func FormatWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}
