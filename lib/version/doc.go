// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the storyboard
// binary.
//
// Four package-level variables may be injected at build time via
// -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/storyboard/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When they are not injected (go install, development builds), the
// commit and dirty flag fall back to the VCS stamp Go embeds in the
// binary, read through runtime/debug.
//
// Formatting functions produce human-readable version strings:
//
//   - [Info] -- "0.1.0-dev (abc1234, 2026-02-10T...)" for --version
//   - [Full] -- Info plus Go version and GOOS/GOARCH
//   - [Short] -- just the version number
//   - [Commit] -- just the git SHA
package version
