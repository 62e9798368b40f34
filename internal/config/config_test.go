package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARKER_MCP_LOG_LEVEL", "")
	t.Setenv("MARKER_DETECTOR", "")
	t.Setenv("MARKER_MAX_FEATURES", "")
	t.Setenv("MARKER_FAST_THRESHOLD", "")
	t.Setenv("MARKER_OVERLAY_SCALE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.False(t, cfg.Debug())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("MARKER_MCP_LOG_LEVEL", "DEBUG")
	t.Setenv("MARKER_DETECTOR", "orb")
	t.Setenv("MARKER_MAX_FEATURES", "250")
	t.Setenv("MARKER_FAST_THRESHOLD", "12")
	t.Setenv("MARKER_OVERLAY_SCALE", "1")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Debug())
	require.Equal(t, DetectorORB, cfg.Detector)
	require.Equal(t, 250, cfg.MaxFeatures)
	require.Equal(t, 12, cfg.FastThreshold)
	require.Equal(t, 1, cfg.OverlayScale)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown detector", "MARKER_DETECTOR", "sift"},
		{"not a number", "MARKER_MAX_FEATURES", "lots"},
		{"zero threshold", "MARKER_FAST_THRESHOLD", "0"},
		{"negative scale", "MARKER_OVERLAY_SCALE", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}
