// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
	"github.com/bureau-foundation/storyboard/lib/codec"
	"github.com/bureau-foundation/storyboard/lib/config"
	"github.com/bureau-foundation/storyboard/lib/store"
)

// options holds the flags shared by every command that touches the
// state file. Empty values defer to the configuration.
type options struct {
	configPath string
	storePath  string
	format     string
	logOutput  string
	logLevel   string
	color      string
}

func (o *options) flagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&o.configPath, "config", "", "YAML config file (default $"+config.EnvironmentVariable+", else built-in defaults)")
	flagSet.StringVar(&o.storePath, "store", "", "state file (overrides store.path)")
	flagSet.StringVar(&o.format, "format", "", "state encoding: auto, json, or cbor (overrides store.format)")
	flagSet.StringVar(&o.logOutput, "log-output", "", "append JSON logs to this file (overrides log.output)")
	flagSet.StringVar(&o.logLevel, "log-level", "", "debug, info, warn, or error (overrides log.level; the session logs to stderr at warn or above)")
	flagSet.StringVar(&o.color, "color", "", "auto, always, or never (overrides ui.color)")
	return flagSet
}

// loadConfig reads the configuration file, applies flag overrides, and
// validates the result.
func (o *options) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	if o.format != "" {
		cfg.Store.Format = o.format
	}
	if o.logOutput != "" {
		cfg.Log.Output = o.logOutput
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.color != "" {
		cfg.UI.Color = o.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Usage("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// environment is what a command body gets to work with.
type environment struct {
	config *config.Config
	logger *slog.Logger
}

// run loads the configuration, builds the logger, applies the color
// mode, and calls body. The log file, if any, is closed afterwards.
func (o *options) run(command string, body func(*environment) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	level, err := logLevel(cfg, command == "session")
	if err != nil {
		return err
	}
	logger, closeLog, err := cli.NewLogger(cfg.Log.Output, level)
	if err != nil {
		return err
	}
	defer closeLog()

	applyColor(cfg.UI.Color)

	logger = logger.With("command", command)
	logger.Debug("configuration loaded",
		"store", cfg.Store.Path,
		"format", cfg.Store.Format,
	)
	return body(&environment{config: cfg, logger: logger})
}

// logLevel returns the level for the process logger. The interactive
// session redraws the whole terminal every cycle, so without a log file
// only warnings and errors may reach stderr.
func logLevel(cfg *config.Config, interactive bool) (slog.Level, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return level, err
	}
	if interactive && cfg.Log.Output == "" {
		level = max(level, slog.LevelWarn)
	}
	return level, nil
}

// applyColor pins the lipgloss color profile. "auto" leaves detection
// to lipgloss, which inspects stdout.
func applyColor(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// openBackend returns the file backend the configuration names. With
// store.create_if_missing set, an absent file is created empty first.
func openBackend(cfg *config.Config, logger *slog.Logger) (*store.FileBackend, error) {
	format, err := codec.ResolveFormat(cfg.Store.Format, cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	backend := store.NewFileBackend(cfg.Store.Path, format)
	if cfg.Store.CreateIfMissing {
		created, err := backend.Init()
		if err != nil {
			return nil, err
		}
		if created {
			logger.Info("created empty state file", "path", cfg.Store.Path, "format", format)
		}
	}
	return backend, nil
}
