// Package config loads deltakit settings from .deltakit.yml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/deltakit/internal/merge"
)

// Config holds project-level settings. Environment variables override the
// file; command-line flags override both.
type Config struct {
	// DBPath is the merge journal database.
	DBPath string `yaml:"db,omitempty" env:"DELTAKIT_DB"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level,omitempty" env:"DELTAKIT_LOG_LEVEL"`
	// Journal enables recording merge runs.
	Journal bool `yaml:"journal" env:"DELTAKIT_JOURNAL"`
	// LegacyArmorMerge reconciles armors the way the first releases did.
	LegacyArmorMerge bool `yaml:"legacy_armor_merge" env:"DELTAKIT_LEGACY_ARMOR_MERGE"`
	// MarkerLength is the conflict marker width used when git does not
	// pass one.
	MarkerLength int `yaml:"marker_length,omitempty" env:"DELTAKIT_MARKER_LENGTH"`
}

// FileNames are the project files Load looks for, in order.
var FileNames = []string{".deltakit.yml", ".deltakit.yaml"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DBPath:       DefaultDBPath(),
		LogLevel:     "info",
		Journal:      true,
		MarkerLength: merge.DefaultMarkerLength,
	}
}

// DefaultDBPath is ~/.deltakit/journal.db.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".deltakit", "journal.db")
	}
	return filepath.Join(home, ".deltakit", "journal.db")
}

// Load reads the first project file found in dir over the defaults and then
// applies environment overrides. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		break
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no command can run with.
func (c *Config) Validate() error {
	if c.MarkerLength < 1 {
		return fmt.Errorf("marker_length must be positive, got %d", c.MarkerLength)
	}
	if c.DBPath == "" {
		return errors.New("db path is empty")
	}
	return nil
}
