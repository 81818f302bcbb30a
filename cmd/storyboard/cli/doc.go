// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the storyboard
// binary.
//
// A [Command] names a subcommand, owns a [pflag.FlagSet] factory and a
// Run function, and may nest further commands. [Command.Execute] routes
// arguments down the tree, parses flags, and prints structured help.
// Mistyped subcommands and flags get a "did you mean" suggestion based
// on edit distance.
//
// Failures caused by the invocation itself (unknown command, bad flag,
// wrong argument count) are returned as [*UsageError] so callers can
// tell them apart from failures of the work the command performs.
// [NewLogger] builds the process logger from the logging configuration.
package cli
