package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TRACKER_DATA"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TRACKER_EXPORT"); v != "" {
		cfg.ExportFile = v
	}
	if v := os.Getenv("TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRACKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TRACKER_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = b
		}
	}
	if v := os.Getenv("TRACKER_TRANSCRIPT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Transcript = b
		}
	}
}
