// Package signal provides the 1-D filtering utilities used by the line
// segmenter: median filtering, sliding-maximum envelopes, and linear
// gap interpolation. All filters are pure functions returning new slices.
package signal

import (
	"math"
	"sort"
)

// MedianFilter returns the windowed median of x with the given odd window
// size. The window is centred on each sample and truncated at the slice
// boundaries, so edge samples are the median of a smaller neighbourhood.
// A window of 1 (or an empty input) returns a copy of x.
func MedianFilter(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	if window <= 1 || len(x) == 0 {
		return out
	}
	half := window / 2
	buf := make([]float64, 0, window)
	for i := range x {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		buf = append(buf[:0], x[lo:hi+1]...)
		sort.Float64s(buf)
		mid := len(buf) / 2
		if len(buf)%2 == 1 {
			out[i] = buf[mid]
		} else {
			out[i] = (buf[mid-1] + buf[mid]) / 2
		}
	}
	return out
}

// SlidingMax returns the windowed maximum of x. The window is centred on
// each sample (left-biased when the size is even, matching the usual
// convention for even-sized maximum filters) and truncated at the slice
// boundaries. A window ≤ 1 returns a copy of x.
func SlidingMax(x []float64, window int) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	if window <= 1 || len(x) == 0 {
		return out
	}
	for i := range x {
		lo := i - window/2
		hi := lo + window - 1
		if lo < 0 {
			lo = 0
		}
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		m := x[lo]
		for j := lo + 1; j <= hi; j++ {
			if x[j] > m {
				m = x[j]
			}
		}
		out[i] = m
	}
	return out
}

// Interpolate fills NaN entries of x by linear interpolation between the
// nearest non-NaN neighbours. Leading and trailing NaN runs are clamped to
// the nearest defined value. Infinities count as defined values. An input
// with no defined value at all is returned unchanged.
func Interpolate(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	first, last := -1, -1
	for i, v := range out {
		if !math.IsNaN(v) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return out
	}

	for i := 0; i < first; i++ {
		out[i] = out[first]
	}
	for i := last + 1; i < len(out); i++ {
		out[i] = out[last]
	}

	// Interior NaN runs sit strictly between two defined samples.
	i := first + 1
	for i < last {
		if !math.IsNaN(out[i]) {
			i++
			continue
		}
		runStart := i
		for math.IsNaN(out[i]) {
			i++
		}
		lo, hi := runStart-1, i
		span := float64(hi - lo)
		for j := runStart; j < hi; j++ {
			t := float64(j-lo) / span
			out[j] = (1-t)*out[lo] + t*out[hi]
		}
	}
	return out
}
