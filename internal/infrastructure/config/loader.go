package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML
	v.SetConfigName("config")
	v.SetConfigType("toml")

	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Environment variables use the DUMBTILE_ prefix (e.g., DUMBTILE_METRICS_ENABLED)
	v.SetEnvPrefix("DUMBTILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shorter names shared with logging.NewFromEnv
	if err := v.BindEnv("logging.level", "DUMBTILE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTILE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUMBTILE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUMBTILE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		configFile := m.viper.ConfigFileUsed()
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}

	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case LogFormatJSON:
		config.Logging.Format = LogFormatJSON
	case "text", "":
		config.Logging.Format = LogFormatConsole
	default:
		config.Logging.Format = LogFormatConsole
	}

	if math.IsNaN(config.Layout.InitialRatio) {
		config.Layout.InitialRatio = 0.5
	}

	config.Metrics.ListenAddr = strings.TrimSpace(config.Metrics.ListenAddr)
}

// Get returns the current configuration (thread-safe).
// Before Load it returns the defaults.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used,
// or the path a config file would be created at.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configFileName)
}

// CreateDefaultConfig writes a default configuration file if none exists.
func (m *Manager) CreateDefaultConfig() (string, error) {
	configFile := filepath.Join(m.configDir, configFileName)

	if _, err := os.Stat(configFile); err == nil {
		return configFile, fmt.Errorf("config file already exists: %s", configFile)
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return "", err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return "", err
	}
	return configFile, nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.fallback_width", defaults.Layout.FallbackWidth)
	m.viper.SetDefault("layout.fallback_height", defaults.Layout.FallbackHeight)
	m.viper.SetDefault("layout.initial_ratio", defaults.Layout.InitialRatio)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen_addr", defaults.Metrics.ListenAddr)

	m.viper.SetDefault("preview.width", defaults.Preview.Width)
	m.viper.SetDefault("preview.height", defaults.Preview.Height)
}
