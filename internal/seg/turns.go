package seg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/survey.lines/internal/signal"
)

// turnMask classifies every point as in-turn or on-line.
//
// The curvature magnitude (1/|radius|) is run through a sliding-maximum
// envelope whose window covers the minimum physical turn distance, so a
// brief straightening inside a sustained turn does not fragment the turn
// interval. A point is in-turn where the envelope reaches the critical
// curvature. The first and last points are forced on-line (turns cannot be
// confirmed at the unbounded edges), and any step distance above MaxGap
// forces in-turn regardless of curvature.
func turnMask(radius, steps []float64, p Params) []bool {
	window := envelopeWindow(steps, p.MinTurnDistance)

	curv := make([]float64, len(radius))
	for i, r := range radius {
		a := math.Abs(r)
		if a == 0 {
			curv[i] = math.Inf(1)
		} else {
			curv[i] = 1 / a // +Inf radius (straight) becomes zero curvature
		}
	}
	env := signal.SlidingMax(curv, window)

	mask := make([]bool, len(radius))
	critical := 1 / p.CriticalRadius
	for i := range mask {
		mask[i] = env[i] >= critical
	}

	mask[0] = false
	mask[len(mask)-1] = false

	for i, d := range steps {
		if d > p.MaxGap {
			mask[i] = true
		}
	}
	return mask
}

// envelopeWindow converts the minimum turn distance into a sample count
// using the global mean step distance. Known limitation: on surveys with
// highly non-uniform trace spacing a global mean under- or over-smooths
// locally.
func envelopeWindow(steps []float64, minTurnDistance float64) int {
	mean := stat.Mean(steps, nil)
	if mean <= 0 || math.IsNaN(mean) {
		return 1
	}
	window := int(math.Round(minTurnDistance / mean))
	if window < 1 {
		window = 1
	}
	return window
}

// linesFromMask converts the boolean turn mask into candidate lines. Each
// turn interval contributes one split point at its rounded midpoint, so the
// ambiguous turning region is divided evenly between the two lines it
// separates. Line lengths accumulate the step distances over their range.
func linesFromMask(mask []bool, steps []float64) ([]Line, error) {
	var starts, ends []int
	for i := 1; i < len(mask); i++ {
		if mask[i] && !mask[i-1] {
			starts = append(starts, i)
		} else if !mask[i] && mask[i-1] {
			ends = append(ends, i)
		}
	}
	if len(starts) != len(ends) {
		return nil, fmt.Errorf("%w: %d starts, %d ends", ErrUnbalancedTurns, len(starts), len(ends))
	}

	bounds := make([]int, 0, len(starts)+2)
	bounds = append(bounds, 0)
	for k := range starts {
		bounds = append(bounds, (starts[k]+ends[k]+1)/2)
	}
	bounds = append(bounds, len(mask))

	lines := make([]Line, 0, len(bounds)-1)
	for k := 0; k+1 < len(bounds); k++ {
		first, last := bounds[k], bounds[k+1]-1
		length := 0.0
		for i := first; i <= last; i++ {
			length += steps[i]
		}
		lines = append(lines, Line{First: first, Last: last, Length: length})
	}
	return lines, nil
}
