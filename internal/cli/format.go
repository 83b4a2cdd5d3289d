// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatHours formats an hour value, dropping the decimal when whole.
// e.g., 7.5 -> "7.5h", 40 -> "40h"
func FormatHours(h float64) string {
	if h == float64(int64(h)) {
		return strconv.FormatInt(int64(h), 10) + "h"
	}
	return strconv.FormatFloat(h, 'f', 1, 64) + "h"
}

// FormatDays formats a day count with one decimal. e.g., 25 -> "25.0d"
func FormatDays(d float64) string {
	return strconv.FormatFloat(d, 'f', 1, 64) + "d"
}

// FormatAmount formats a monetary value with thousand separators and the
// configured currency unit. e.g., "₹", 1234567.5 -> "₹1,234,568"
func FormatAmount(unit string, v float64) string {
	if unit == "" {
		unit = "₹"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	s := unit + FormatNumber(int64(v+0.5))
	if neg {
		return "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate formats a date as YYYY-MM-DD, or "-" for the zero value.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// FormatBytes formats a byte count with binary suffixes.
func FormatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return strconv.FormatInt(n, 10) + " B"
	}
}
