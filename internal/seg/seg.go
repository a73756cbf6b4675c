// Package seg partitions an ordered sequence of survey trace positions into
// contiguous acquisition lines. Straight-ish passes become lines; turns
// between passes (and large positional gaps) become split points. The
// pipeline is a single deterministic pass: per-point turning radius →
// turn mask → candidate lines → short-line merging.
package seg

import (
	"errors"
	"fmt"

	"github.com/banshee-data/survey.lines/internal/config"
	"github.com/banshee-data/survey.lines/internal/geom"
	"github.com/banshee-data/survey.lines/internal/monitoring"
)

// medianWindow is the fixed median filter width applied to the raw radius
// signal. Wide enough to kill single-sample positioning spikes, narrow
// enough not to smear turn boundaries.
const medianWindow = 5

// Sentinel errors for the rejection and invariant classes of the segmenter.
var (
	// ErrTooFewTraces is returned when the input has no interior points for
	// curvature estimation at the configured stride.
	ErrTooFewTraces = errors.New("too few traces for curvature estimation")

	// ErrUnbalancedTurns is returned when the number of turn starts and turn
	// ends disagree. The mask boundaries are forced off, so this indicates a
	// logic or data precondition failure, never a recoverable condition.
	ErrUnbalancedTurns = errors.New("mismatched turn interval boundaries")

	// ErrPartitionViolation is returned when the merged lines fail to cover
	// every trace exactly once.
	ErrPartitionViolation = errors.New("line ranges do not partition the trace sequence")
)

// Params holds the segmentation parameters. All distances are metres.
type Params struct {
	CriticalRadius  float64 // turning radius at or below which a point is turning
	MinTurnDistance float64 // minimum along-track distance a real turn spans
	MaxGap          float64 // step distance above which a split is forced
	MinLineLength   float64 // lines shorter than this are merged into a neighbour
	Stride          int     // trace offset between the points of a curvature triple
}

// ParamsFromTuning builds Params from a loaded SegmentationConfig.
// Use this in production code where the config is already loaded.
func ParamsFromTuning(cfg *config.SegmentationConfig) Params {
	return Params{
		CriticalRadius:  cfg.GetCriticalRadiusM(),
		MinTurnDistance: cfg.GetMinTurnDistanceM(),
		MaxGap:          cfg.GetMaxGapM(),
		MinLineLength:   cfg.GetMinLineLengthM(),
		Stride:          cfg.GetStride(),
	}
}

// DefaultParams returns the default segmentation parameters.
func DefaultParams() Params {
	return ParamsFromTuning(config.EmptySegmentationConfig())
}

// Line is a contiguous trace index range [First, Last] (inclusive) with its
// accumulated along-track length in metres.
type Line struct {
	First  int
	Last   int
	Length float64
}

// TraceCount returns the number of traces covered by the line.
func (l Line) TraceCount() int { return l.Last - l.First + 1 }

// Segment partitions points into acquisition lines. The returned ranges
// cover [0, len(points)-1] exactly once, in order. Inputs with fewer than
// 2·stride+2 points have no interior curvature estimates and are rejected
// with ErrTooFewTraces.
func Segment(points []geom.Point, p Params) ([]Line, error) {
	if p.Stride < 1 {
		return nil, fmt.Errorf("stride must be at least 1, got %d", p.Stride)
	}
	n := len(points)
	if n < 2*p.Stride+2 {
		return nil, fmt.Errorf("%w: %d traces, need at least %d for stride %d",
			ErrTooFewTraces, n, 2*p.Stride+2, p.Stride)
	}

	steps := StepDistances(points)
	radius := RadiusSignal(points, p.Stride)

	mask := turnMask(radius, steps, p)
	lines, err := linesFromMask(mask, steps)
	if err != nil {
		return nil, err
	}
	monitoring.Logf("seg: %d candidate lines from %d traces", len(lines), n)

	lines = mergeShortLines(lines, p.MinLineLength)

	if err := checkPartition(lines, n); err != nil {
		return nil, err
	}
	monitoring.Logf("seg: %d lines after merging", len(lines))
	return lines, nil
}

// checkPartition verifies that lines cover [0, n-1] contiguously with no
// gaps or overlaps.
func checkPartition(lines []Line, n int) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: no lines for %d traces", ErrPartitionViolation, n)
	}
	next := 0
	total := 0
	for i, l := range lines {
		if l.First != next || l.Last < l.First {
			return fmt.Errorf("%w: line %d spans [%d, %d], expected to start at %d",
				ErrPartitionViolation, i, l.First, l.Last, next)
		}
		total += l.TraceCount()
		next = l.Last + 1
	}
	if next != n || total != n {
		return fmt.Errorf("%w: lines cover %d of %d traces", ErrPartitionViolation, total, n)
	}
	return nil
}
