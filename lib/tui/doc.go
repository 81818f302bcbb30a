// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal presentation pieces for
// storyboard: the color theme, fixed-width table layout used by the
// screens, and the cursor picker rendered by the status prompt.
//
// Everything here is pure string production. Nothing reads input or
// writes to the terminal; callers own I/O. All width calculations are
// in terminal cells (via x/ansi), so styled text and wide runes line up.
package tui
