// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/storyboard/lib/navigator"
	"github.com/bureau-foundation/storyboard/lib/tui"
)

// ReportedError is returned by [Run] for an error that has already been
// shown to the user. The process should exit non-zero without printing
// it again.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// ExitCode returns 1. The command's main function checks for this
// method to skip its own error line.
func (e *ReportedError) ExitCode() int {
	return 1
}

// Run drives the session until the navigator's stack is empty. Screens
// render to output. On any error from rendering, reading, interpreting,
// or applying an intent, Run prints the error, waits for a keypress,
// and returns a [*ReportedError] wrapping it.
func Run(terminal Terminal, nav *navigator.Navigator, output io.Writer, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for {
		if err := terminal.ClearScreen(); err != nil {
			return fmt.Errorf("clearing screen: %w", err)
		}

		current := nav.Current()
		if current == nil {
			logger.Debug("screen stack empty, ending session")
			return nil
		}
		if err := current.Render(output); err != nil {
			return report(terminal, output, logger, err)
		}

		line, err := terminal.ReadLine()
		if err != nil {
			return report(terminal, output, logger, err)
		}

		intent, err := current.Interpret(strings.TrimSpace(line))
		if err != nil {
			return report(terminal, output, logger, err)
		}
		if err := nav.Apply(intent); err != nil {
			return report(terminal, output, logger, err)
		}
	}
}

// report shows err and waits for acknowledgement.
func report(terminal Terminal, output io.Writer, logger *slog.Logger, err error) error {
	message := tui.DefaultTheme.ErrorStyle().Render("Error: " + err.Error())
	fmt.Fprintf(output, "\n%s\n\nPress any key to continue...\n", message)
	if waitErr := terminal.WaitForKeypress(); waitErr != nil {
		logger.Warn("waiting for keypress failed", "error", waitErr)
	}
	logger.Error("session ended by error", "error", err)
	return &ReportedError{Err: err}
}
