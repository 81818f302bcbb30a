// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "storyboard.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Store.Path != filepath.Join("data", "db.json") {
		t.Errorf("expected store.path=data/db.json, got %s", cfg.Store.Path)
	}
	if cfg.Store.Format != "auto" {
		t.Errorf("expected store.format=auto, got %s", cfg.Store.Format)
	}
	if cfg.Store.CreateIfMissing {
		t.Error("expected create_if_missing=false")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log.level=warn, got %s", cfg.Log.Level)
	}
	if cfg.UI.Color != "auto" {
		t.Errorf("expected ui.color=auto, got %s", cfg.UI.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_WithoutStoryboardConfig(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without %s: %v", EnvironmentVariable, err)
	}
	if cfg.Store.Path != Default().Store.Path {
		t.Errorf("expected default store path, got %s", cfg.Store.Path)
	}
}

func TestLoad_WithStoryboardConfig(t *testing.T) {
	configPath := writeConfig(t, `
store:
  path: /test/board.cbor
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Store.Path != "/test/board.cbor" {
		t.Errorf("expected path=/test/board.cbor, got %s", cfg.Store.Path)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Store.Format != "auto" || cfg.UI.Color != "auto" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
store:
  path: ${CONFIG_DIR}/boards/main.json
  format: json
  create_if_missing: true

log:
  level: debug
  output: ${HOME}/storyboard.log

ui:
  color: never
`)
	t.Setenv("HOME", "/home/tester")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	wantPath := filepath.Join(filepath.Dir(configPath), "boards", "main.json")
	if cfg.Store.Path != wantPath {
		t.Errorf("expected store.path=%s, got %s", wantPath, cfg.Store.Path)
	}
	if cfg.Store.Format != "json" || !cfg.Store.CreateIfMissing {
		t.Errorf("store section = %+v", cfg.Store)
	}
	if cfg.Log.Output != "/home/tester/storyboard.log" {
		t.Errorf("expected log.output expanded, got %s", cfg.Log.Output)
	}
	if cfg.UI.Color != "never" {
		t.Errorf("expected ui.color=never, got %s", cfg.UI.Color)
	}
	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel = %v, %v; want debug", level, err)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile(empty) failed: %v", err)
	}
	if cfg.Store.Path != Default().Store.Path {
		t.Errorf("empty file did not yield defaults: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	_, err := LoadFile(writeConfig(t, "store:\n  pth: typo.json\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "pth") {
		t.Errorf("error should name the unknown key, got %v", err)
	}

	if _, err := LoadFile(writeConfig(t, "store: [not, a, mapping]\n")); err == nil {
		t.Error("expected error for wrong shape")
	}
}

func TestEnvVarsDoNotOverride(t *testing.T) {
	configPath := writeConfig(t, "store:\n  path: /file/db.json\n")
	t.Setenv("STORYBOARD_STORE_PATH", "/env/db.json")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Store.Path != "/file/db.json" {
		t.Errorf("expected store.path=/file/db.json from file, got %s (env vars should not override)", cfg.Store.Path)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/storyboard",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/storyboard",
		},
		{
			input:    "${MISSING_STORYBOARD_VAR:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "empty store path",
			modify: func(c *Config) {
				c.Store.Path = ""
			},
			wantErr: true,
		},
		{
			name: "invalid store format",
			modify: func(c *Config) {
				c.Store.Format = "xml"
			},
			wantErr: true,
		},
		{
			name: "uppercase log level",
			modify: func(c *Config) {
				c.Log.Level = "DEBUG"
			},
			wantErr: false,
		},
		{
			name: "invalid log level",
			modify: func(c *Config) {
				c.Log.Level = "verbose"
			},
			wantErr: true,
		},
		{
			name: "invalid color mode",
			modify: func(c *Config) {
				c.UI.Color = "sometimes"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Store.Path = ""
	cfg.UI.Color = "sometimes"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"store.path", "ui.color"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}
