package seg

import (
	"math"
	"testing"

	"github.com/banshee-data/survey.lines/internal/geom"
)

func TestStepDistances(t *testing.T) {
	testCases := []struct {
		name     string
		points   []geom.Point
		expected []float64
	}{
		{"empty", nil, []float64{}},
		{"single_point", []geom.Point{{X: 1, Y: 1}}, []float64{0}},
		{
			name:     "last_entry_duplicates_predecessor",
			points:   []geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 14}},
			expected: []float64{5, 10, 10},
		},
		{
			name:     "uniform_spacing",
			points:   []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 30, Y: 0}},
			expected: []float64{10, 10, 10, 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := StepDistances(tc.points)
			if len(got) != len(tc.expected) {
				t.Fatalf("length = %d, want %d", len(got), len(tc.expected))
			}
			for i := range got {
				if math.Abs(got[i]-tc.expected[i]) > 1e-12 {
					t.Errorf("step[%d] = %v, want %v", i, got[i], tc.expected[i])
				}
			}
		})
	}
}

func TestRadiusSignalOnCircle(t *testing.T) {
	// Points on a circle of radius 100: every interior estimate must
	// recover the radius, and the boundary fill inherits it.
	const r = 100.0
	const n = 64
	points := make([]geom.Point, n)
	for i := range points {
		th := 2 * math.Pi * float64(i) / n
		points[i] = geom.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	sig := RadiusSignal(points, 3)
	if len(sig) != n {
		t.Fatalf("signal length = %d, want %d", len(sig), n)
	}
	for i, v := range sig {
		if math.Abs(math.Abs(v)-r) > 1e-6 {
			t.Errorf("radius[%d] = %v, want magnitude %v", i, v, r)
		}
	}
}

func TestRadiusSignalStraightPath(t *testing.T) {
	points := make([]geom.Point, 40)
	for i := range points {
		points[i] = geom.Point{X: float64(i) * 12.5, Y: 0}
	}
	sig := RadiusSignal(points, 5)
	for i, v := range sig {
		if !math.IsInf(v, 1) {
			t.Errorf("radius[%d] = %v, want +Inf on a straight path", i, v)
		}
	}
}

func TestRadiusSignalFiltersSpike(t *testing.T) {
	// A single jittered point on an otherwise straight path produces a
	// finite radius spike; with stride 1 the spike spans three samples and
	// survives the median, but its neighbourhood must stay predominantly
	// straight with a wider stride.
	points := make([]geom.Point, 60)
	for i := range points {
		points[i] = geom.Point{X: float64(i) * 10, Y: 0}
	}
	points[30].Y = 0.5 // half-metre GPS blip

	sig := RadiusSignal(points, 10)
	// The blip affects triples whose endpoints or centre touch index 30,
	// but the wide stride keeps every estimate large: nothing should look
	// like a sharp turn.
	for i, v := range sig {
		if !math.IsInf(v, 0) && math.Abs(v) < 500 {
			t.Errorf("radius[%d] = %v, jitter misread as a sharp turn", i, v)
		}
	}
}
