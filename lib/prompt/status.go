// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/storyboard/lib/model"
	"github.com/bureau-foundation/storyboard/lib/tui"
)

// statusModel offers the four statuses in a picker. A digit selects the
// matching option at once; arrows or j/k move and enter selects.
type statusModel struct {
	picker tui.Picker
	keys   KeyMap
	theme  tui.Theme

	chosen    model.Status
	selected  bool
	cancelled bool
}

func newStatusModel(keys KeyMap, theme tui.Theme) statusModel {
	options := make([]tui.PickerOption, 0, len(model.Statuses))
	for _, status := range model.Statuses {
		options = append(options, tui.PickerOption{
			Label: status.String(),
			Value: string(status),
		})
	}
	return statusModel{
		picker: tui.Picker{Options: options},
		keys:   keys,
		theme:  theme,
	}
}

func (picker statusModel) Init() tea.Cmd {
	return nil
}

func (picker statusModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKey := message.(tea.KeyMsg)
	if !isKey {
		return picker, nil
	}

	switch {
	case key.Matches(keyMessage, picker.keys.DismissPicker):
		picker.cancelled = true
		return picker, tea.Quit
	case key.Matches(keyMessage, picker.keys.Up):
		picker.picker.MoveUp()
	case key.Matches(keyMessage, picker.keys.Down):
		picker.picker.MoveDown()
	case key.Matches(keyMessage, picker.keys.Select):
		return picker.choose()
	default:
		if digit, ok := singleDigit(keyMessage); ok && picker.picker.Jump(digit-1) {
			return picker.choose()
		}
	}
	return picker, nil
}

func (picker statusModel) choose() (tea.Model, tea.Cmd) {
	picker.chosen = model.Status(picker.picker.Selected().Value)
	picker.selected = true
	return picker, tea.Quit
}

func (picker statusModel) View() string {
	if picker.selected || picker.cancelled {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(picker.theme.TitleStyle().Render("New status:"))
	builder.WriteString("\n\n")
	for _, line := range picker.picker.Render(picker.theme) {
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(picker.theme.HelpStyle().Render(
		helpLine(picker.keys.Up, picker.keys.Down, picker.keys.Select, picker.keys.DismissPicker)))
	builder.WriteString("\n")
	return builder.String()
}

// singleDigit reports the value of a key press consisting of one
// decimal digit.
func singleDigit(message tea.KeyMsg) (int, bool) {
	if message.Type != tea.KeyRunes || len(message.Runes) != 1 {
		return 0, false
	}
	character := message.Runes[0]
	if character < '0' || character > '9' {
		return 0, false
	}
	return int(character - '0'), true
}
