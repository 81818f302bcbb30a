// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for storyboard.
//
// Configuration is loaded from a single file specified by either the
// STORYBOARD_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no automatic file search. When
// neither names a file, [Load] returns the built-in defaults, so a bare
// storyboard invocation works in any directory.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${CONFIG_DIR} (the directory holding the config file), and
// ${VAR:-default} patterns are expanded. No environment variables
// override config values; command-line flags do, in the command.
//
// Key exports:
//
//   - [Config] -- master struct with Store, Log, UI sections
//   - [Default] -- returns a Config with defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other storyboard packages.
package config
