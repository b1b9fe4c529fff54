// Package numwords converts currency amounts into their long-form English
// representation using the Indian numbering system (Crore/Lakh/Thousand).
package numwords

import (
	"errors"
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// ErrInvalidAmount is returned for negative or non-finite input.
var ErrInvalidAmount = errors.New("numwords: amount must be a non-negative finite number")

// formatTens renders 0-99.
func formatTens(n int) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 != 0 {
		return tens[n/10] + " " + ones[n%10]
	}
	return tens[n/10]
}

// formatHundreds renders 0-999.
func formatHundreds(n int) string {
	if n == 0 {
		return ""
	}
	if n < 100 {
		return formatTens(n)
	}
	if n%100 != 0 {
		return ones[n/100] + " Hundred " + formatTens(n%100)
	}
	return ones[n/100] + " Hundred"
}

func formatGroup(n int, scale string) string {
	if n == 0 {
		return ""
	}
	return formatHundreds(n) + " " + scale
}

// Convert renders a rupee amount in words, e.g.
// Convert(29500) = "Twenty Nine Thousand Five Hundred Rupees Only".
// The fractional part is rounded to the nearest paise and appended as
// "and <words> Paise" when nonzero.
func Convert(amount float64) (string, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidAmount
	}
	if amount == 0 {
		return "Zero Rupees Only", nil
	}

	rupees := int64(math.Floor(amount))
	paise := int(math.Round((amount - float64(rupees)) * 100))
	if paise == 100 {
		rupees++
		paise = 0
	}

	// Indian grouping: groups of two digits above the first three.
	crores := int((rupees / 10000000) % 100)
	lakhs := int((rupees / 100000) % 100)
	thousands := int((rupees / 1000) % 100)
	hundreds := int(rupees % 1000)

	parts := []string{
		formatGroup(crores, "Crore"),
		formatGroup(lakhs, "Lakh"),
		formatGroup(thousands, "Thousand"),
		formatHundreds(hundreds),
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}

	result := strings.Join(nonEmpty, " ") + " Rupees"
	if paise > 0 {
		result += " and " + formatTens(paise) + " Paise"
	}
	return strings.TrimSpace(result + " Only"), nil
}

// ConvertCents is a convenience wrapper for amounts stored in paise.
func ConvertCents(cents int64) (string, error) {
	if cents < 0 {
		return "", ErrInvalidAmount
	}
	return Convert(float64(cents) / 100)
}
