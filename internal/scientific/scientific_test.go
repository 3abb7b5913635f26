package scientific

import (
	"math"
	"strconv"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0000000000000000e+00"},
		{1, "1.0000000000000000e+00"},
		{100, "1.0000000000000000e+02"},
		{-17.5, "-1.7500000000000000e+01"},
		{0.001, "1.0000000000000000e-03"},
		{math.Pi, "3.1415926535897931e+00"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	values := []float64{
		0,
		math.Copysign(0, -1),
		1,
		-1,
		math.Pi,
		-math.Pi,
		math.MaxFloat64,
		-math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.Ldexp(1, -1022),
		1.0 / 3.0,
		6.02214076e23,
		123456.789,
	}

	for _, v := range values {
		s := Format(v)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("ParseFloat(%q) error = %v", s, err)
		}
		if math.Float64bits(back) != math.Float64bits(v) {
			t.Errorf("round trip of %v through %q = %v, bits differ", v, s, back)
		}
	}
}
