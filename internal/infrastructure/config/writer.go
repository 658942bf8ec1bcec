package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Encode writes cfg as TOML. Sections follow struct field order.
func Encode(w io.Writer, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteConfigOrdered writes the configuration to path as TOML.
func WriteConfigOrdered(cfg *Config, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
