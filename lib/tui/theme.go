// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/storyboard/lib/model"
)

// Theme defines the color palette for storyboard's terminal output. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row in pickers.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status colors.
	StatusOpen       lipgloss.Color
	StatusInProgress lipgloss.Color
	StatusResolved   lipgloss.Color
	StatusClosed     lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorForeground  lipgloss.Color

	// Picker background for unselected rows.
	PickerBackground lipgloss.Color
}

// StatusColor returns the color for a status. Unknown values return
// FaintText.
func (theme Theme) StatusColor(status model.Status) lipgloss.Color {
	switch status {
	case model.StatusOpen:
		return theme.StatusOpen
	case model.StatusInProgress:
		return theme.StatusInProgress
	case model.StatusResolved:
		return theme.StatusResolved
	case model.StatusClosed:
		return theme.StatusClosed
	default:
		return theme.FaintText
	}
}

// StatusStyle returns a foreground style for status labels.
func (theme Theme) StatusStyle(status model.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.StatusColor(status))
}

// TitleStyle is used for the dashed section titles ("EPICS", "STORY").
func (theme Theme) TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true)
}

// HeaderStyle is used for table column header rows.
func (theme Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.BorderColor)
}

// HelpStyle is used for the key legend at the bottom of a screen.
func (theme Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.HelpText)
}

// ErrorStyle is used when the driving loop reports a fatal error.
func (theme Theme) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.ErrorForeground).Bold(true)
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusOpen:       lipgloss.Color("114"), // green
	StatusInProgress: lipgloss.Color("220"), // yellow/amber
	StatusResolved:   lipgloss.Color("141"), // light purple
	StatusClosed:     lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	ErrorForeground:  lipgloss.Color("196"),

	PickerBackground: lipgloss.Color("237"),
}
