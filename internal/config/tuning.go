package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/survey.lines/internal/units"
)

// SegmentationConfig represents the tunable parameters of the line
// segmenter. Fields are pointers so a partial JSON file only overrides
// what it names; the Get* methods supply defaults for nil fields.
type SegmentationConfig struct {
	// Turn detection params
	CriticalRadiusM  *float64 `json:"critical_radius_m,omitempty"`
	MinTurnDistanceM *float64 `json:"min_turn_distance_m,omitempty"`
	MaxGapM          *float64 `json:"max_gap_m,omitempty"`
	Stride           *int     `json:"stride,omitempty"`

	// Merge params
	MinLineLengthM *float64 `json:"min_line_length_m,omitempty"`

	// Trace header coordinate pair to segment on: "source", "group" or "cdp"
	CoordSource *string `json:"coord_source,omitempty"`
}

// EmptySegmentationConfig returns a SegmentationConfig with all fields nil.
func EmptySegmentationConfig() *SegmentationConfig {
	return &SegmentationConfig{}
}

// LoadSegmentationConfig loads a SegmentationConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size. Fields omitted from the JSON retain their defaults, so
// partial configs are safe.
func LoadSegmentationConfig(path string) (*SegmentationConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptySegmentationConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *SegmentationConfig) Validate() error {
	if c.CriticalRadiusM != nil && *c.CriticalRadiusM <= 0 {
		return fmt.Errorf("critical_radius_m must be positive, got %f", *c.CriticalRadiusM)
	}
	if c.MinTurnDistanceM != nil && *c.MinTurnDistanceM <= 0 {
		return fmt.Errorf("min_turn_distance_m must be positive, got %f", *c.MinTurnDistanceM)
	}
	if c.MaxGapM != nil && *c.MaxGapM <= 0 {
		return fmt.Errorf("max_gap_m must be positive, got %f", *c.MaxGapM)
	}
	if c.MinLineLengthM != nil && *c.MinLineLengthM < 0 {
		return fmt.Errorf("min_line_length_m must be non-negative, got %f", *c.MinLineLengthM)
	}
	if c.Stride != nil && *c.Stride < 1 {
		return fmt.Errorf("stride must be at least 1, got %d", *c.Stride)
	}
	if c.CoordSource != nil && !units.IsValidCoordSource(*c.CoordSource) {
		return fmt.Errorf("coord_source must be one of %s, got %q",
			units.GetValidCoordSourcesString(), *c.CoordSource)
	}
	return nil
}

// GetCriticalRadiusM returns the critical_radius_m value or the default.
func (c *SegmentationConfig) GetCriticalRadiusM() float64 {
	if c.CriticalRadiusM == nil {
		return 1000.0 // turns tighter than 1km count as line changes
	}
	return *c.CriticalRadiusM
}

// GetMinTurnDistanceM returns the min_turn_distance_m value or the default.
func (c *SegmentationConfig) GetMinTurnDistanceM() float64 {
	if c.MinTurnDistanceM == nil {
		return 500.0
	}
	return *c.MinTurnDistanceM
}

// GetMaxGapM returns the max_gap_m value or the default.
func (c *SegmentationConfig) GetMaxGapM() float64 {
	if c.MaxGapM == nil {
		return 200.0
	}
	return *c.MaxGapM
}

// GetMinLineLengthM returns the min_line_length_m value or the default.
func (c *SegmentationConfig) GetMinLineLengthM() float64 {
	if c.MinLineLengthM == nil {
		return 2000.0
	}
	return *c.MinLineLengthM
}

// GetStride returns the stride value or the default.
func (c *SegmentationConfig) GetStride() int {
	if c.Stride == nil {
		return 10
	}
	return *c.Stride
}

// GetCoordSource returns the coord_source value or the default.
func (c *SegmentationConfig) GetCoordSource() string {
	if c.CoordSource == nil {
		return units.CoordSourceSource
	}
	return *c.CoordSource
}
