// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrInputClosed means the input stream ended while a line was expected.
var ErrInputClosed = errors.New("input closed")

// Terminal is the I/O surface of an interactive session.
type Terminal interface {
	// ClearScreen erases the display and homes the cursor.
	ClearScreen() error

	// ReadLine blocks until a full line is available and returns it
	// without the line terminator.
	ReadLine() (string, error)

	// WaitForKeypress blocks until any key is pressed.
	WaitForKeypress() error
}

// ANSITerminal drives a VT100-compatible terminal.
type ANSITerminal struct {
	input  io.Reader
	reader *bufio.Reader
	output io.Writer
}

// NewANSITerminal returns a terminal reading from input and writing
// escape sequences to output.
func NewANSITerminal(input io.Reader, output io.Writer) *ANSITerminal {
	return &ANSITerminal{
		input:  input,
		reader: bufio.NewReader(input),
		output: output,
	}
}

// ClearScreen implements [Terminal].
func (terminal *ANSITerminal) ClearScreen() error {
	_, err := io.WriteString(terminal.output, ansi.EraseEntireScreen+ansi.CursorHomePosition)
	return err
}

// ReadLine implements [Terminal]. A final line without a terminator is
// returned as is; end of input with nothing read is [ErrInputClosed].
func (terminal *ANSITerminal) ReadLine() (string, error) {
	line, err := terminal.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", fmt.Errorf("reading input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// WaitForKeypress implements [Terminal]. On a terminal the input is put
// in raw mode so a single key suffices; otherwise one byte is consumed.
// End of input counts as a keypress.
func (terminal *ANSITerminal) WaitForKeypress() error {
	if file, ok := terminal.input.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		previous, err := term.MakeRaw(int(file.Fd()))
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(int(file.Fd()), previous)
	}
	if _, err := terminal.reader.ReadByte(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading keypress: %w", err)
	}
	return nil
}
