package units

import (
	"math"
	"testing"
)

func TestConvertToMetres(t *testing.T) {
	testCases := []struct {
		name     string
		distance float64
		system   int
		expected float64
	}{
		{"metres_passthrough", 100, Metres, 100},
		{"feet_converted", 1000, Feet, 304.8},
		{"unknown_system_passthrough", 42.5, 0, 42.5},
		{"negative_feet", -10, Feet, -3.048},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertToMetres(tc.distance, tc.system)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("ConvertToMetres(%v, %d) = %v, want %v", tc.distance, tc.system, got, tc.expected)
			}
		})
	}
}

func TestIsValidCoordSource(t *testing.T) {
	for _, src := range ValidCoordSources {
		if !IsValidCoordSource(src) {
			t.Errorf("IsValidCoordSource(%q) = false, want true", src)
		}
	}
	for _, src := range []string{"", "receiver", "SOURCE", "cdp "} {
		if IsValidCoordSource(src) {
			t.Errorf("IsValidCoordSource(%q) = true, want false", src)
		}
	}
}
