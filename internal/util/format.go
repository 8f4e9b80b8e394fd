package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCount renders an integer with comma grouping ("1,234,567").
func FormatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatMoney renders a dollar amount with comma grouping and two decimals.
func FormatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	whole, _ := strconv.ParseUint(s[:dot], 10, 64)
	return FormatCount(whole) + s[dot:]
}

// FormatDate renders the long-form publication date ("January 2, 2006").
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// TruncateString truncates a string to maxRunes characters (rune-based, not
// byte-based). If truncated, appends "..." to the result.
func TruncateString(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// Normalize performs basic string normalization (lowercase + trim)
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
