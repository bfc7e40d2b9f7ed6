package indicators

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{math.Copysign(0, -1), "0.00"},
		{math.NaN(), "0.00"},
		{3.1, "3.10"},
		{3.14159, "3.14"},
		{110, "110.00"},
		{-2.5, "-2.50"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber_MissingSummaryValue(t *testing.T) {
	// an absent summary classifies to zero scalars
	if got := FormatNumber(ClassifyRSI(nil).CurrentRSI); got != "0.00" {
		t.Fatalf("expected 0.00, got %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(96); got != "$96.00" {
		t.Fatalf("expected $96.00, got %q", got)
	}
}
