// Package config loads the optional rowdb.toml configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the tool's settings. Every field has a working default; the
// config file only overrides what it names.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Storage StorageConfig `toml:"storage"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level  string `toml:"level"`   // debug, info, warn, error
	SeqURL string `toml:"seq_url"` // empty disables the Seq handler
}

// StorageConfig controls file persistence.
type StorageConfig struct {
	Extension string `toml:"extension"` // fallback suffix for load paths
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Extension: ".odt",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is not an
// error; malformed TOML or invalid values are.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Storage.Extension != "" && !strings.HasPrefix(c.Storage.Extension, ".") {
		return fmt.Errorf("storage extension %q must start with a dot", c.Storage.Extension)
	}
	return nil
}
