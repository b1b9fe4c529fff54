package invoice

import "testing"

func TestFormatIndianGrouping(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "0.00"},
		{50, "0.50"},
		{100, "1.00"},
		{99900, "999.00"},
		{100000, "1,000.00"},
		{2950000, "29,500.00"},
		{10000000, "1,00,000.00"},
		{123456750, "12,34,567.50"},
		{1234567800, "1,23,45,678.00"},
		{-123456750, "-12,34,567.50"},
	}

	for _, tt := range tests {
		if got := FormatIndianGrouping(tt.cents); got != tt.want {
			t.Errorf("FormatIndianGrouping(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatINR(t *testing.T) {
	if got := FormatINR(123456750); got != "Rs. 12,34,567.50" {
		t.Errorf("FormatINR(123456750) = %q", got)
	}
}
