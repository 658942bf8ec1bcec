package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/rs/zerolog"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)
	validationErrors = append(validationErrors, validatePreview(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.FallbackWidth < 1 {
		validationErrors = append(validationErrors, "layout.fallback_width must be positive")
	}
	if config.Layout.FallbackHeight < 1 {
		validationErrors = append(validationErrors, "layout.fallback_height must be positive")
	}
	if config.Layout.InitialRatio < 0 || config.Layout.InitialRatio > 1 {
		validationErrors = append(validationErrors, "layout.initial_ratio must be between 0.0 and 1.0")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		return []string{fmt.Sprintf("logging.level %q is not a valid level (trace, debug, info, warn, error, fatal, panic, disabled)", config.Logging.Level)}
	}
	return nil
}

func validateMetrics(config *Config) []string {
	if !config.Metrics.Enabled {
		return nil
	}
	if config.Metrics.ListenAddr == "" {
		return []string{"metrics.listen_addr is required when metrics.enabled is true"}
	}
	if _, _, err := net.SplitHostPort(config.Metrics.ListenAddr); err != nil {
		return []string{fmt.Sprintf("metrics.listen_addr %q must be host:port", config.Metrics.ListenAddr)}
	}
	return nil
}

func validatePreview(config *Config) []string {
	var validationErrors []string
	if config.Preview.Width < 8 || config.Preview.Width > 400 {
		validationErrors = append(validationErrors, "preview.width must be between 8 and 400")
	}
	if config.Preview.Height < 4 || config.Preview.Height > 200 {
		validationErrors = append(validationErrors, "preview.height must be between 4 and 200")
	}
	return validationErrors
}
