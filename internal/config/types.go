// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultDataFile   = "data/save.txt"
	DefaultExportFile = "data/tasks.json"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds the full configuration for tracker.
type Config struct {
	// Paths
	DataFile   string `toml:"data_file"`
	ExportFile string `toml:"export_file"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	NoColor       bool   `toml:"no_color"`

	// Session transcript (JSONL, written next to the save file)
	Transcript bool `toml:"transcript"`

	// Working directory relative paths resolve against (computed)
	WorkDir string `toml:"-"`
}
