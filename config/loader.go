package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfigYAML parses a Config from YAML bytes on top of Default() and validates it.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func ParseConfigYAML(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ParseConfigYAMLString parses a Config from a YAML string and validates it.
func ParseConfigYAMLString(yamlText string) (*Config, error) {
	return ParseConfigYAML([]byte(yamlText))
}

// Validate checks every field; schedule errors wrap tsp.ErrInvalidConfig.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be text or json)", c.LogFormat)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress_every cannot be negative")
	}
	if c.Plot != "" {
		if err := ValidatePlotPath(c.Plot); err != nil {
			return err
		}
	}
	if err := c.Annealing().Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	return nil
}

// ValidatePlotPath accepts the file extensions the renderer can produce.
func ValidatePlotPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
		return nil
	default:
		return fmt.Errorf("invalid plot: %s (extension must be png, svg, pdf or jpg)", path)
	}
}
