// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt implements storyboard's interactive prompts as small
// bubbletea programs: a two-field form for new epics and stories, a
// status picker, and a yes/no confirmation.
//
// Each prompt runs as its own short-lived program on the terminal
// between screen renders, then exits. A [Runner] ties the prompts to an
// input and output stream and exposes them as a [navigator.Prompts]
// bundle. Dismissing any prompt (escape or ctrl+c) reports
// [navigator.ErrCancelled].
package prompt
