// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Storyboard is a terminal issue tracker for epics and their stories.
//
// Run without a subcommand it opens the interactive session: a stack of
// screens over a single state file, driven by one typed line at a time.
// Subcommands create the state file, print the epic list, export the
// state to another encoding, and report the build version. See
// "storyboard --help".
package main
