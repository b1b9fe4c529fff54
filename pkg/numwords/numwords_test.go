package numwords

import (
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{20, "Twenty Rupees Only"},
		{45, "Forty Five Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{101, "One Hundred One Rupees Only"},
		{999, "Nine Hundred Ninety Nine Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{29500, "Twenty Nine Thousand Five Hundred Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{250000, "Two Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{1234567.50, "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven Rupees and Fifty Paise Only"},
		{15000.75, "Fifteen Thousand Rupees and Seventy Five Paise Only"},
		{0.50, "Rupees and Fifty Paise Only"},
	}

	for _, tt := range tests {
		got, err := Convert(tt.amount)
		if err != nil {
			t.Errorf("Convert(%v) returned error: %v", tt.amount, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Convert(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestConvertInvalid(t *testing.T) {
	for _, amount := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Convert(amount); err == nil {
			t.Errorf("Convert(%v) expected error, got nil", amount)
		}
	}
}

func TestConvertPaiseRounding(t *testing.T) {
	// 99.999 rounds up to a full rupee, not 100 paise.
	got, err := Convert(99.999)
	if err != nil {
		t.Fatalf("Convert(99.999) returned error: %v", err)
	}
	if got != "One Hundred Rupees Only" {
		t.Errorf("Convert(99.999) = %q, want %q", got, "One Hundred Rupees Only")
	}
}

func TestConvertCents(t *testing.T) {
	got, err := ConvertCents(2950000)
	if err != nil {
		t.Fatalf("ConvertCents returned error: %v", err)
	}
	if got != "Twenty Nine Thousand Five Hundred Rupees Only" {
		t.Errorf("ConvertCents(2950000) = %q", got)
	}

	if _, err := ConvertCents(-1); err == nil {
		t.Error("ConvertCents(-1) expected error, got nil")
	}
}
