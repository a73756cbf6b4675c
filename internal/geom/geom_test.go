package geom

import (
	"math"
	"testing"
)

func TestFitCircleCoincidentPoints(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 3, Y: 4}

	testCases := []struct {
		name       string
		z1, z2, z3 Point
	}{
		{"first_two_coincide", a, a, b},
		{"first_and_last_coincide", a, b, a},
		{"last_two_coincide", b, a, a},
		{"all_coincide", a, a, a},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := FitCircle(tc.z1, tc.z2, tc.z3)
			if !c.Degenerate() {
				t.Errorf("expected degenerate fit, got radius %v centre %+v", c.Radius, c.Center)
			}
			if !math.IsInf(c.Radius, 1) {
				t.Errorf("degenerate radius must be +Inf, got %v", c.Radius)
			}
		})
	}
}

func TestFitCircleCollinear(t *testing.T) {
	testCases := []struct {
		name       string
		z1, z2, z3 Point
	}{
		{"horizontal", Point{0, 0}, Point{10, 0}, Point{20, 0}},
		{"vertical", Point{5, -3}, Point{5, 7}, Point{5, 100}},
		{"diagonal", Point{0, 0}, Point{1, 1}, Point{2, 2}},
		{"uneven_spacing", Point{0, 0}, Point{0.1, 0.2}, Point{50, 100}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := FitCircle(tc.z1, tc.z2, tc.z3)
			if !c.Degenerate() {
				t.Errorf("collinear triple should be degenerate, got radius %v", c.Radius)
			}
		})
	}
}

func TestFitCircleKnownRadius(t *testing.T) {
	testCases := []struct {
		name       string
		z1, z2, z3 Point
		center     Point
		radius     float64
	}{
		{
			name: "unit_circle_at_origin",
			z1:   Point{1, 0}, z2: Point{0, 1}, z3: Point{-1, 0},
			center: Point{0, 0}, radius: 1,
		},
		{
			name: "large_radius_at_origin",
			z1:   Point{500, 0}, z2: Point{0, 500}, z3: Point{-500, 0},
			center: Point{0, 0}, radius: 500,
		},
		{
			name: "offset_centre",
			z1:   Point{110, 20}, z2: Point{100, 30}, z3: Point{90, 20},
			center: Point{100, 20}, radius: 10,
		},
	}

	const tol = 1e-9
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := FitCircle(tc.z1, tc.z2, tc.z3)
			if c.Degenerate() {
				t.Fatalf("unexpected degenerate fit")
			}
			if math.Abs(c.Radius-tc.radius) > tol {
				t.Errorf("radius = %v, want %v", c.Radius, tc.radius)
			}
			if c.Center.Dist(tc.center) > tol {
				t.Errorf("centre = %+v, want %+v", c.Center, tc.center)
			}
		})
	}
}

func TestSignedRadiusHandedness(t *testing.T) {
	r := 100.0
	s := r / math.Sqrt2

	// Counter-clockwise quarter arc, then the same arc traversed backwards.
	ccw := SignedRadius(Point{r, 0}, Point{s, s}, Point{0, r})
	cw := SignedRadius(Point{0, r}, Point{s, s}, Point{r, 0})

	if math.Abs(math.Abs(ccw)-r) > 1e-9 {
		t.Errorf("ccw magnitude = %v, want %v", math.Abs(ccw), r)
	}
	if math.Abs(math.Abs(cw)-r) > 1e-9 {
		t.Errorf("cw magnitude = %v, want %v", math.Abs(cw), r)
	}
	if ccw >= 0 {
		t.Errorf("counter-clockwise triple should be negative, got %v", ccw)
	}
	if cw <= 0 {
		t.Errorf("clockwise triple should be positive, got %v", cw)
	}
}

func TestSignedRadiusDegenerate(t *testing.T) {
	v := SignedRadius(Point{0, 0}, Point{1, 0}, Point{2, 0})
	if !math.IsInf(v, 1) {
		t.Errorf("collinear signed radius = %v, want +Inf", v)
	}
}
