package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName        = "dumbtile"
	configFileName = "config.toml"
)

// GetConfigDir returns the config directory for dumbtile
// ($XDG_CONFIG_HOME/dumbtile, ~/.config/dumbtile by default).
// With ENV=dev it is .dev/dumbtile under the working directory.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// GetConfigFile returns the path of the default config file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
