// Package units provides shared constants and validation for distance units
// and trace header coordinate sources.
package units

// Distance unit constants, matching the SEG-Y binary header measurement
// system codes.
const (
	Metres = 1
	Feet   = 2
)

// FeetToMetres is the international foot in metres.
const FeetToMetres = 0.3048

// ConvertToMetres converts a distance in the given measurement system to
// metres. Unknown or unset systems are assumed to already be metres.
func ConvertToMetres(d float64, system int) float64 {
	if system == Feet {
		return d * FeetToMetres
	}
	return d
}

// Coordinate source constants: which trace header coordinate pair the
// segmenter reads.
const (
	CoordSourceSource = "source"
	CoordSourceGroup  = "group"
	CoordSourceCDP    = "cdp"
)

// ValidCoordSources contains all valid coordinate source values.
var ValidCoordSources = []string{CoordSourceSource, CoordSourceGroup, CoordSourceCDP}

// IsValidCoordSource checks if the given source is in the list of valid values.
func IsValidCoordSource(src string) bool {
	for _, valid := range ValidCoordSources {
		if src == valid {
			return true
		}
	}
	return false
}

// GetValidCoordSourcesString returns a comma-separated string of valid
// coordinate sources for error messages.
func GetValidCoordSourcesString() string {
	return "source, group, cdp"
}
