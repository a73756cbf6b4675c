package seg

import (
	"github.com/banshee-data/survey.lines/internal/monitoring"
)

// mergeShortLines repeatedly absorbs the globally shortest line into a
// neighbour until every line reaches minLength or only one line remains.
// The shortest line merges into its previous neighbour; when it is the
// first line it absorbs the next one instead. Ties keep the lowest index.
func mergeShortLines(lines []Line, minLength float64) []Line {
	merged := 0
	for len(lines) > 1 {
		minIdx := 0
		for i := 1; i < len(lines); i++ {
			if lines[i].Length < lines[minIdx].Length {
				minIdx = i
			}
		}
		if lines[minIdx].Length >= minLength {
			break
		}

		if minIdx > 0 {
			prev := &lines[minIdx-1]
			prev.Last = lines[minIdx].Last
			prev.Length += lines[minIdx].Length
			lines = append(lines[:minIdx], lines[minIdx+1:]...)
		} else {
			first := &lines[0]
			first.Last = lines[1].Last
			first.Length += lines[1].Length
			lines = append(lines[:1], lines[2:]...)
		}
		merged++
	}
	if merged > 0 {
		monitoring.Logf("seg: merged %d short lines", merged)
	}
	return lines
}
