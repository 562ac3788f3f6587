// Package money normalizes free-form currency text into decimal values.
package money

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// currencyRunes are symbols stripped before parsing.
const currencyRunes = "£$€¥₹₩₺₫₽₦₱₪₴₡₲₵₭₮₯₠₢₣₤₥₧₨"

// Parse interprets raw as a money amount, accepting common global formats:
//
//	2900
//	2,900
//	2.900        (three digits after a lone separator read as thousands)
//	2 900,50
//	£2,900.50
//
// The second return is false when raw has no usable amount. Absence is
// distinct from zero: "" and "abc" are absent, "0" is zero.
func Parse(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	// Drop currency symbols and all whitespace, including NBSP.
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if strings.ContainsRune(currencyRunes, r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, false
	}

	// Keep a leading minus only.
	neg := strings.HasPrefix(s, "-")
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return 0, false
	}

	// Quick pass: plain integer. Dotted forms go through the separator
	// heuristic so "2.900" reads as thousands, not as 2.9.
	if plainInteger(s) {
		return finish(s, neg)
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	var normalized string
	switch {
	case hasComma && hasDot:
		// The separator appearing last is the decimal separator.
		decSep, thouSep := ".", ","
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			decSep, thouSep = ",", "."
		}
		normalized = strings.ReplaceAll(s, thouSep, "")
		normalized = strings.Replace(normalized, decSep, ".", 1)

	case hasComma || hasDot:
		sep := ","
		if hasDot {
			sep = "."
		}
		parts := strings.Split(s, sep)
		if len(parts) > 2 {
			// Multiple separators are all thousands separators.
			normalized = strings.Join(parts, "")
		} else {
			// One separator: 1-2 trailing digits mean a decimal part,
			// anything else is treated as a thousands separator. Three
			// trailing digits are ambiguous ("2.900") and deliberately
			// read as thousands.
			digitsAfter := len(parts[1])
			switch {
			case digitsAfter == 0:
				return 0, false
			case digitsAfter <= 2:
				normalized = parts[0] + "." + parts[1]
			default:
				normalized = parts[0] + parts[1]
			}
		}

	default:
		normalized = s
	}

	// Final cleanup: digits and at most one dot survive.
	for _, r := range normalized {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}

	return finish(normalized, neg)
}

func plainInteger(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func finish(s string, neg bool) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
