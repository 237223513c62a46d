package format

import (
	"fmt"
	"strconv"
)

// Multiplier formats a damage multiplier as "×2" or "×0.5".
func Multiplier(m float64) string {
	return "×" + strconv.FormatFloat(m, 'f', -1, 64)
}

// Percent formats a probability percentage with two decimals.
func Percent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

// OptInt formats an optional stat, "—" when absent.
func OptInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// BoolMark returns "✓" for true and "✗" for false.
func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

func itoa(n int) string { return strconv.Itoa(n) }
