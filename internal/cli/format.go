// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"unitlog/internal/model"
)

// FormatUnits formats a unit count, dropping the decimal when whole.
// e.g., 9 -> "9", 2.5 -> "2.5"
func FormatUnits(u float64) string {
	s := strconv.FormatFloat(u, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// FormatFraction renders "consumed / target" with unit formatting.
func FormatFraction(consumed, target float64) string {
	return FormatUnits(consumed) + " / " + FormatUnits(target)
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDayOfWeek returns a 3-letter day abbreviation for a stored date,
// or "???" if the date doesn't parse.
func FormatDayOfWeek(date string) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return "???"
	}
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	return days[int(t.Weekday())]
}
