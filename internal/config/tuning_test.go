package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadSegmentationConfig(t *testing.T) {
	t.Run("full_config", func(t *testing.T) {
		path := writeConfigFile(t, "tuning.json", `{
			"critical_radius_m": 1500,
			"min_turn_distance_m": 800,
			"max_gap_m": 120,
			"min_line_length_m": 3000,
			"stride": 25,
			"coord_source": "cdp"
		}`)
		cfg, err := LoadSegmentationConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, cfg.GetCriticalRadiusM())
		assert.Equal(t, 800.0, cfg.GetMinTurnDistanceM())
		assert.Equal(t, 120.0, cfg.GetMaxGapM())
		assert.Equal(t, 3000.0, cfg.GetMinLineLengthM())
		assert.Equal(t, 25, cfg.GetStride())
		assert.Equal(t, "cdp", cfg.GetCoordSource())
	})

	t.Run("partial_config_keeps_defaults", func(t *testing.T) {
		path := writeConfigFile(t, "tuning.json", `{"stride": 5}`)
		cfg, err := LoadSegmentationConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.GetStride())
		assert.Equal(t, 1000.0, cfg.GetCriticalRadiusM())
		assert.Equal(t, "source", cfg.GetCoordSource())
	})

	t.Run("rejects_non_json_extension", func(t *testing.T) {
		path := writeConfigFile(t, "tuning.yaml", `{}`)
		_, err := LoadSegmentationConfig(path)
		assert.Error(t, err)
	})

	t.Run("rejects_missing_file", func(t *testing.T) {
		_, err := LoadSegmentationConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("rejects_malformed_json", func(t *testing.T) {
		path := writeConfigFile(t, "tuning.json", `{"stride": `)
		_, err := LoadSegmentationConfig(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	ptrFloat := func(v float64) *float64 { return &v }
	ptrInt := func(v int) *int { return &v }
	ptrString := func(v string) *string { return &v }

	testCases := []struct {
		name      string
		cfg       SegmentationConfig
		expectErr bool
	}{
		{"empty_is_valid", SegmentationConfig{}, false},
		{"zero_critical_radius", SegmentationConfig{CriticalRadiusM: ptrFloat(0)}, true},
		{"negative_turn_distance", SegmentationConfig{MinTurnDistanceM: ptrFloat(-1)}, true},
		{"zero_max_gap", SegmentationConfig{MaxGapM: ptrFloat(0)}, true},
		{"negative_min_line_length", SegmentationConfig{MinLineLengthM: ptrFloat(-0.1)}, true},
		{"zero_min_line_length_ok", SegmentationConfig{MinLineLengthM: ptrFloat(0)}, false},
		{"zero_stride", SegmentationConfig{Stride: ptrInt(0)}, true},
		{"valid_stride", SegmentationConfig{Stride: ptrInt(1)}, false},
		{"bad_coord_source", SegmentationConfig{CoordSource: ptrString("receiver")}, true},
		{"group_coord_source", SegmentationConfig{CoordSource: ptrString("group")}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
