package circuit

import (
	"math"
	"testing"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		// Plain numbers
		{"1.5707", 1.5707, true},
		{"-0.5", -0.5, true},
		{".5", 0.5, true},
		{"0", 0, true},
		{"1e-05", 1e-05, true},

		// Pi constant
		{"pi", math.Pi, true},
		{"PI", math.Pi, true},

		// Pi fractions
		{"pi/2", math.Pi / 2, true},
		{"pi/3", math.Pi / 3, true},
		{"pi/1024", math.Pi / 1024, true},

		// Coefficients
		{"2pi", 2 * math.Pi, true},
		{"3*pi/4", 3 * math.Pi / 4, true},

		// Negative
		{"-pi/2", -math.Pi / 2, true},
		{"-3*pi/4", -3 * math.Pi / 4, true},

		// Whitespace
		{" pi / 2 ", math.Pi / 2, true},
		{" 3 * pi / 4 ", 3 * math.Pi / 4, true},

		// Invalid
		{"", 0, false},
		{"abc", 0, false},
		{"pi/0", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAngle(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseAngle(%q): ok=%v, want ok=%v", tt.input, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-10 {
			t.Errorf("ParseAngle(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestFormatAngle(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{3 * math.Pi / 4, "3*pi/4"},
		{-math.Pi / 2, "-pi/2"},
		{-math.Pi / 1024, "-pi/1024"},
		{math.Ldexp(math.Pi, -20), "pi/1048576"},
		{4 * math.Pi, "4*pi"},
		{1.5, "1.5"},
		{0, "0"},
		{0.01, "0.01"},
	}

	for _, tt := range tests {
		got := FormatAngle(tt.input)
		if got != tt.want {
			t.Errorf("FormatAngle(%g) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatAngleRoundTrip(t *testing.T) {
	for _, val := range []float64{
		math.Pi / 8, -5 * math.Pi / 16, math.Ldexp(-math.Pi, -13), 0.123456789, -2.5e-7,
	} {
		s := FormatAngle(val)
		got, ok := ParseAngle(s)
		if !ok {
			t.Errorf("ParseAngle(FormatAngle(%g) = %q) failed", val, s)
			continue
		}
		if math.Abs(got-val) > 1e-12 {
			t.Errorf("round trip of %g through %q gave %g", val, s, got)
		}
	}
}
