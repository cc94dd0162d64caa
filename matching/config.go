package matching

import (
	"os"
	"strconv"
)

// Historical domain defaults.
const (
	DefaultProximityThresholdNM = 300.0
	DefaultTimeWindowSeconds    = 30.0
	DefaultGapToleranceSeconds  = 300.0
)

// Config holds the interaction-matching thresholds.
type Config struct {
	// ProximityThresholdNM is the maximum great-circle distance, in
	// nautical miles, at which a controller and a flight are considered
	// in radio range.
	ProximityThresholdNM float64
	// TimeWindowSeconds is the tolerance for treating a controller
	// sample and a flight sample as simultaneous.
	TimeWindowSeconds float64
	// GapToleranceSeconds is the largest gap between consecutive matches
	// that still belongs to the same contact session.
	GapToleranceSeconds float64
}

func DefaultConfig() Config {
	return Config{
		ProximityThresholdNM: DefaultProximityThresholdNM,
		TimeWindowSeconds:    DefaultTimeWindowSeconds,
		GapToleranceSeconds:  DefaultGapToleranceSeconds,
	}
}

// ConfigFromEnv reads threshold overrides from the environment, falling
// back to the defaults for unset or unparsable values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v, ok := envFloat("PROXIMITY_THRESHOLD_NM"); ok {
		cfg.ProximityThresholdNM = v
	}
	if v, ok := envFloat("TIME_WINDOW_SECONDS"); ok {
		cfg.TimeWindowSeconds = v
	}
	if v, ok := envFloat("GAP_TOLERANCE_SECONDS"); ok {
		cfg.GapToleranceSeconds = v
	}
	return cfg
}

// Validate fails fast on non-positive thresholds, before any computation.
func (c Config) Validate() error {
	if c.ProximityThresholdNM <= 0 {
		return &ConfigurationError{Option: "proximity_threshold_nm", Value: c.ProximityThresholdNM}
	}
	if c.TimeWindowSeconds <= 0 {
		return &ConfigurationError{Option: "time_window_seconds", Value: c.TimeWindowSeconds}
	}
	if c.GapToleranceSeconds <= 0 {
		return &ConfigurationError{Option: "gap_tolerance_seconds", Value: c.GapToleranceSeconds}
	}
	return nil
}

func envFloat(name string) (float64, bool) {
	s := os.Getenv(name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
