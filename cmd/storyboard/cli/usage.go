// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// UsageError reports a malformed invocation: an unknown command or
// flag, a bad flag value, or the wrong number of arguments. Fixing the
// command line is the remedy; retrying as-is will fail the same way.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error so errors.Is and errors.As see
// through the wrapper.
func (e *UsageError) Unwrap() error { return e.Err }

// Usage creates a [*UsageError] from a format string.
func Usage(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExactArgs returns a usage error unless args has exactly count
// entries. names describes the expected arguments for the message.
func ExactArgs(args []string, count int, names string) error {
	switch {
	case len(args) < count:
		return Usage("missing argument: %s", names)
	case len(args) > count:
		return Usage("unexpected argument %q", args[count])
	}
	return nil
}
