// Package config provides configuration management for dumbtile with Viper integration.
package config

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for dumbtile.
type Config struct {
	Layout  LayoutConfig  `mapstructure:"layout" toml:"layout" json:"layout"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics" json:"metrics"`
	Preview PreviewConfig `mapstructure:"preview" toml:"preview" json:"preview"`
}

// LayoutConfig tunes the tiling layout.
type LayoutConfig struct {
	// FallbackWidth and FallbackHeight size the frame given to windows the tree failed to place.
	FallbackWidth  int `mapstructure:"fallback_width" toml:"fallback_width" json:"fallback_width"`
	FallbackHeight int `mapstructure:"fallback_height" toml:"fallback_height" json:"fallback_height"`
	// InitialRatio is the main pane ratio hint new layout states start with (0.0-1.0).
	InitialRatio float64 `mapstructure:"initial_ratio" toml:"initial_ratio" json:"initial_ratio"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// MetricsConfig controls the Prometheus endpoint of long-running commands.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr" json:"listen_addr"`
}

// PreviewConfig sizes the terminal frame preview, in character cells.
type PreviewConfig struct {
	Width  int `mapstructure:"width" toml:"width" json:"width"`
	Height int `mapstructure:"height" toml:"height" json:"height"`
}

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			FallbackWidth:  100,
			FallbackHeight: 100,
			InitialRatio:   0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: "127.0.0.1:9464",
		},
		Preview: PreviewConfig{
			Width:  64,
			Height: 20,
		},
	}
}
