// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yutoain/savings-app/internal/model"
)

// DefaultCurrency prefixes amounts when no symbol is configured.
const DefaultCurrency = "¥"

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

// FormatMoney formats an amount with a currency prefix.
// e.g., (-12345, "¥") -> "-¥12,345"
func FormatMoney(n int64, currency string) string {
	if n < 0 {
		return "-" + currency + FormatNumber(-n)
	}
	return currency + FormatNumber(n)
}

// FormatSigned formats an amount with an explicit sign.
// e.g., 500 -> "+¥500", -500 -> "-¥500"
func FormatSigned(n int64, currency string) string {
	if n >= 0 {
		return "+" + FormatMoney(n, currency)
	}
	return FormatMoney(n, currency)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDays formats a day count, e.g. "1 day", "12 days", "3 days ago".
func FormatDays(n int) string {
	switch {
	case n == 1:
		return "1 day"
	case n == -1:
		return "1 day ago"
	case n < 0:
		return fmt.Sprintf("%d days ago", -n)
	default:
		return fmt.Sprintf("%d days", n)
	}
}

// FormatMonth returns a "March 2024" style heading.
func FormatMonth(y int, m time.Month) string {
	return fmt.Sprintf("%s %d", m, y)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// ParseAmount reads a whole-unit amount typed by a user. Thousands
// separators, surrounding spaces and a leading currency symbol are ignored.
// e.g., "¥12,000" -> 12000
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "¥$€£ ")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: amount is empty", model.ErrInvalid)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a whole number", model.ErrInvalid, s)
	}
	return n, nil
}
