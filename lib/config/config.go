// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "STORYBOARD_CONFIG"

// Config is the master configuration for storyboard.
type Config struct {
	// Store configures the state file.
	Store StoreConfig `yaml:"store"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`

	// UI configures terminal presentation.
	UI UIConfig `yaml:"ui"`
}

// StoreConfig configures the state file.
type StoreConfig struct {
	// Path is the state file location.
	// Default: data/db.json
	Path string `yaml:"path"`

	// Format selects the encoding: "auto" (by extension: .cbor is
	// CBOR, anything else JSON), "json", or "cbor".
	// Default: auto
	Format string `yaml:"format"`

	// CreateIfMissing writes an empty state file on startup when Path
	// does not exist. An existing file is never touched.
	// Default: false
	CreateIfMissing bool `yaml:"create_if_missing"`
}

// LogConfig configures diagnostic logging. The interactive screen owns
// stdout, so logs go to a file or to stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	// Default: warn
	Level string `yaml:"level"`

	// Output is a file to append JSON log lines to. Empty means stderr.
	Output string `yaml:"output"`
}

// UIConfig configures terminal presentation.
type UIConfig struct {
	// Color is "auto" (detect from the terminal), "always", or "never".
	// Default: auto
	Color string `yaml:"color"`
}

// Valid values for enumerated fields.
var (
	storeFormats = []string{"auto", "json", "cbor"}
	logLevels    = []string{"debug", "info", "warn", "error"}
	colorModes   = []string{"auto", "always", "never"}
)

// Default returns the default configuration. Defaults apply to every
// field the config file leaves out.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path:   filepath.Join("data", "db.json"),
			Format: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
		UI: UIConfig{
			Color: "auto",
		},
	}
}

// Load loads configuration from the file named by STORYBOARD_CONFIG.
// With the variable unset, it returns [Default].
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables("")
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Unknown keys
// are rejected so a misspelled option fails loudly instead of being
// ignored.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables(filepath.Dir(path))

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables(configDir string) {
	vars := map[string]string{
		"CONFIG_DIR": configDir,
		"HOME":       os.Getenv("HOME"),
	}

	c.Store.Path = expandVars(c.Store.Path, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Store.Path == "" {
		errs = append(errs, fmt.Errorf("store.path is required"))
	}
	if !slices.Contains(storeFormats, c.Store.Format) {
		errs = append(errs, fmt.Errorf("store.format must be one of: %v", storeFormats))
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}
	if !slices.Contains(colorModes, c.UI.Color) {
		errs = append(errs, fmt.Errorf("ui.color must be one of: %v", colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// LogLevel returns Log.Level as an slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
