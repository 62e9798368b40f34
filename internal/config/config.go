// Package config reads runtime settings for the marker MCP server.
//
// Settings come from the process environment. A .env file in the working
// directory is loaded first when present; variables already set in the
// environment take precedence over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Detector names accepted by MARKER_DETECTOR.
const (
	DetectorFAST = "fast"
	DetectorORB  = "orb"
)

// Config holds the server settings.
type Config struct {
	// LogLevel is "debug" to enable verbose logging; anything else is quiet.
	LogLevel string

	// Detector selects the keypoint detector used by the feature verifier.
	Detector string

	// MaxFeatures caps the number of keypoints reported per neighborhood.
	MaxFeatures int

	// FastThreshold is the intensity difference used by the FAST segment test.
	FastThreshold int

	// OverlayScale is the nearest-neighbor upscale applied to overlays.
	OverlayScale int
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		Detector:      DetectorFAST,
		MaxFeatures:   1000,
		FastThreshold: 5,
		OverlayScale:  3,
	}
}

// Load reads the configuration from .env and the environment.
func Load() (*Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("MARKER_MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("MARKER_DETECTOR"); v != "" {
		v = strings.ToLower(v)
		if v != DetectorFAST && v != DetectorORB {
			return nil, fmt.Errorf("MARKER_DETECTOR: unknown detector %q", v)
		}
		cfg.Detector = v
	}

	var err error
	if cfg.MaxFeatures, err = positiveInt("MARKER_MAX_FEATURES", cfg.MaxFeatures); err != nil {
		return nil, err
	}
	if cfg.FastThreshold, err = positiveInt("MARKER_FAST_THRESHOLD", cfg.FastThreshold); err != nil {
		return nil, err
	}
	if cfg.OverlayScale, err = positiveInt("MARKER_OVERLAY_SCALE", cfg.OverlayScale); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

func positiveInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, n)
	}
	return n, nil
}
