package seg

import (
	"math"

	"github.com/banshee-data/survey.lines/internal/geom"
	"github.com/banshee-data/survey.lines/internal/signal"
)

// StepDistances returns the Euclidean distance from each point to its
// successor. The final entry duplicates its predecessor so the signal has
// one value per point.
func StepDistances(points []geom.Point) []float64 {
	d := make([]float64, len(points))
	if len(points) < 2 {
		return d
	}
	for i := 0; i+1 < len(points); i++ {
		d[i] = points[i].Dist(points[i+1])
	}
	d[len(d)-1] = d[len(d)-2]
	return d
}

// RadiusSignal computes a smoothed signed turning radius for every point.
// Interior points (at least stride away from both ends) get a direct
// estimate from the strided triple (i-stride, i, i+stride); the raw
// trace-to-trace signal is dominated by positioning jitter, so the triple
// samples the path at a coarser spatial scale. Boundary points are filled
// by interpolation against the nearest estimates, and a median filter
// suppresses the remaining outlier spikes.
func RadiusSignal(points []geom.Point, stride int) []float64 {
	n := len(points)
	r := make([]float64, n)
	for i := range r {
		r[i] = math.NaN()
	}
	for i := stride; i < n-stride; i++ {
		r[i] = geom.SignedRadius(points[i-stride], points[i], points[i+stride])
	}
	r = signal.Interpolate(r)
	return signal.MedianFilter(r, medianWindow)
}
