// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the process logger. With output set, JSON lines are
// appended to that file. Otherwise records go to stderr: text when
// stderr is a terminal, JSON when it is piped or redirected. The
// interactive session owns stdout, so the logger never writes there.
//
// The returned close function releases the log file, if any.
func NewLogger(output string, level slog.Level) (*slog.Logger, func() error, error) {
	options := &slog.HandlerOptions{Level: level}

	if output != "" {
		file, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		return slog.New(slog.NewJSONHandler(file, options)), file.Close, nil
	}

	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, options)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	return slog.New(handler), func() error { return nil }, nil
}
