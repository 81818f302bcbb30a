// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package console runs storyboard's interactive session on a line-based
// terminal.
//
// [Terminal] is the small I/O contract the session needs: clear the
// screen, read one line, wait for a single keypress. [ANSITerminal]
// implements it with ANSI escape sequences and, for the keypress, a
// brief switch into raw mode via golang.org/x/term.
//
// [Run] is the driving loop: clear, render the navigator's current
// screen, read a line, interpret it, apply the intent, repeat until the
// stack empties. Any error stops the session after it has been shown
// to the user and acknowledged with a keypress.
package console
