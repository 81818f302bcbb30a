// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the storyboard command tree and wires the
// configuration, logger, store, navigator, prompts, and console loop
// together for each command.
package commands
