// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PickerOption is a single selectable item in a picker.
type PickerOption struct {
	Label string // Display text.
	Value string // Value reported on selection.
}

// Picker is a vertical list with a movable cursor. The owner routes
// keys to it (up/down to move, a digit to jump) and reads Selected when
// the user confirms.
type Picker struct {
	Options []PickerOption
	Cursor  int
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (picker *Picker) MoveUp() {
	picker.Cursor--
	if picker.Cursor < 0 {
		picker.Cursor = len(picker.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (picker *Picker) MoveDown() {
	picker.Cursor++
	if picker.Cursor >= len(picker.Options) {
		picker.Cursor = 0
	}
}

// Jump places the cursor on the option at index. Returns false, leaving
// the cursor alone, when index is out of range.
func (picker *Picker) Jump(index int) bool {
	if index < 0 || index >= len(picker.Options) {
		return false
	}
	picker.Cursor = index
	return true
}

// Selected returns the currently highlighted option.
func (picker *Picker) Selected() PickerOption {
	return picker.Options[picker.Cursor]
}

// Width returns the visible width of every rendered line.
func (picker *Picker) Width() int {
	maxLabelWidth := 0
	for _, option := range picker.Options {
		labelWidth := ansi.StringWidth(option.Label)
		if labelWidth > maxLabelWidth {
			maxLabelWidth = labelWidth
		}
	}
	// Layout: " > N) LABEL " with 1 char padding on each side.
	return 1 + len("> ") + len("1) ") + maxLabelWidth + 1
}

// Render produces one line per option, numbered from 1. Every line has
// the same visible width; the highlighted option uses the selection
// colors and a ">" marker.
func (picker *Picker) Render(theme Theme) []string {
	totalWidth := picker.Width()
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.PickerBackground)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, len(picker.Options))
	for index, option := range picker.Options {
		marker := " "
		style := backgroundStyle
		if index == picker.Cursor {
			marker = ">"
			style = selectedStyle
		}

		content := marker + " " + numberLabel(index) + option.Label
		if pad := innerWidth - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
		lines = append(lines, style.Render(" "+content+" "))
	}
	return lines
}

// numberLabel returns the "N) " prefix for the option at index. Only
// the first nine options get a digit; the rest are blank-aligned.
func numberLabel(index int) string {
	if index < 9 {
		return string(rune('1'+index)) + ") "
	}
	return "   "
}
