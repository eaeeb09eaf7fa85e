package exporter

import (
	"fmt"
	"strconv"
	"strings"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// formatMoney renders a monetary amount with comma thousands groups and two
// decimals, e.g. 1234.5 -> "1,234.50". Used for the report text lines only;
// CSV output uses formatFloat to keep numbers delimiter-safe.
func formatMoney(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	return sign + groupThousands(intPart) + "." + fracPart
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatPeriod renders the report period as MM/YYYY with a zero-padded month.
func formatPeriod(month, year int) string {
	return fmt.Sprintf("%02d/%d", month, year)
}
