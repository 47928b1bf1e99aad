// Package config loads the settings of the towers command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// MaxDisks bounds the disk count so the 2^n - 1 moves fit the move counter.
const MaxDisks = 63

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting of a run.
type Config struct {
	Disks       int    `mapstructure:"disks"`
	Skip        int    `mapstructure:"skip"`
	Take        int    `mapstructure:"take"` // 0 means unlimited
	Player      string `mapstructure:"player"`
	Format      string `mapstructure:"format"`
	Color       string `mapstructure:"color"`
	Summary     bool   `mapstructure:"summary"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the settings used when neither a file nor a flag sets a value.
func Default() Config {
	return Config{
		Disks:     3,
		Player:    "Joe",
		Format:    FormatText,
		Color:     ColorAuto,
		LogLevel:  "warn",
		LogFormat: FormatText,
	}
}

// Load reads a YAML or JSON file (by extension) and decodes it over cfg.
// Keys missing from the file keep the value already in cfg.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("invalid config %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Disks < 0 || c.Disks > MaxDisks {
		return fmt.Errorf("disks must be between 0 and %d, got %d", MaxDisks, c.Disks)
	}
	if c.Skip < 0 {
		return fmt.Errorf("skip must not be negative, got %d", c.Skip)
	}
	if c.Take < 0 {
		return fmt.Errorf("take must not be negative, got %d", c.Take)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q", c.Color)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
