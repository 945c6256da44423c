package config

import (
	"fmt"
	"time"
)

// ReadinessConfig holds tunables for the readiness engine and the clock that
// feeds it.
type ReadinessConfig struct {
	// WindowDays is the look-ahead window within which an understaffed
	// match is flagged not ready.
	WindowDays int
	// TodayRefreshInterval is how often the "today" reference used for
	// status derivation is refreshed from the host clock.
	TodayRefreshInterval time.Duration
}

// LoadReadinessConfigFromEnv loads readiness configuration from environment
// variables.
func LoadReadinessConfigFromEnv() ReadinessConfig {
	return ReadinessConfig{
		WindowDays:           GetEnvInt("READINESS_WINDOW_DAYS", 14),
		TodayRefreshInterval: GetEnvDuration("READINESS_TODAY_REFRESH", 30*time.Minute),
	}
}

// Validate validates readiness configuration.
func (c ReadinessConfig) Validate() error {
	if c.WindowDays < 0 {
		return fmt.Errorf("WindowDays must be non-negative")
	}
	if c.TodayRefreshInterval <= 0 {
		return fmt.Errorf("TodayRefreshInterval must be greater than 0")
	}
	return nil
}
