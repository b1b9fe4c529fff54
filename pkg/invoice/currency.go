package invoice

import (
	"fmt"
	"strings"
)

// FormatINR formats an amount in cents with the Indian digit grouping
// convention and a rupee prefix, e.g. 123456750 -> "Rs. 12,34,567.50".
// gofpdf's core fonts cannot render the rupee glyph, so the document uses
// the "Rs." prefix throughout.
func FormatINR(cents int64) string {
	return "Rs. " + FormatIndianGrouping(cents)
}

// FormatIndianGrouping renders cents as a decimal string with commas at
// two-digit intervals after the first three digits: 12,34,567.50.
func FormatIndianGrouping(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	grouped := groupIndian(digits)

	out := fmt.Sprintf("%s.%02d", grouped, frac)
	if negative {
		out = "-" + out
	}
	return out
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}

	return strings.Join(groups, ",") + "," + tail
}
