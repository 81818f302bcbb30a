// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/storyboard/lib/tui"
)

// Field limits. Names show in a 32-cell column and descriptions in a
// 27-cell one; longer text is kept but truncated on display.
const (
	nameCharLimit        = 128
	descriptionCharLimit = 512
)

// fieldsModel is a form with a name and a description input. Enter on
// the name moves to the description; enter on the description submits.
type fieldsModel struct {
	title  string
	inputs []textinput.Model
	focus  int
	keys   KeyMap
	theme  tui.Theme

	submitted bool
	cancelled bool
}

func newFieldsModel(title string, keys KeyMap, theme tui.Theme) fieldsModel {
	name := textinput.New()
	name.Prompt = "Name: "
	name.CharLimit = nameCharLimit
	name.Focus()

	description := textinput.New()
	description.Prompt = "Description: "
	description.CharLimit = descriptionCharLimit

	return fieldsModel{
		title:  title,
		inputs: []textinput.Model{name, description},
		keys:   keys,
		theme:  theme,
	}
}

// Name returns the trimmed name input.
func (form fieldsModel) Name() string {
	return strings.TrimSpace(form.inputs[0].Value())
}

// Description returns the trimmed description input.
func (form fieldsModel) Description() string {
	return strings.TrimSpace(form.inputs[1].Value())
}

func (form fieldsModel) Init() tea.Cmd {
	return textinput.Blink
}

func (form fieldsModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKey := message.(tea.KeyMsg)
	if !isKey {
		return form.updateFocused(message)
	}

	switch {
	case key.Matches(keyMessage, form.keys.Dismiss):
		form.cancelled = true
		return form, tea.Quit

	case key.Matches(keyMessage, form.keys.Submit):
		if form.focus == len(form.inputs)-1 {
			form.submitted = true
			return form, tea.Quit
		}
		return form, form.setFocus(form.focus + 1)

	case key.Matches(keyMessage, form.keys.NextField):
		return form, form.setFocus((form.focus + 1) % len(form.inputs))

	case key.Matches(keyMessage, form.keys.PreviousField):
		return form, form.setFocus((form.focus + len(form.inputs) - 1) % len(form.inputs))
	}
	return form.updateFocused(message)
}

// setFocus moves focus to the input at index and blurs the others.
func (form *fieldsModel) setFocus(index int) tea.Cmd {
	form.focus = index
	var command tea.Cmd
	for position := range form.inputs {
		if position == index {
			command = form.inputs[position].Focus()
			continue
		}
		form.inputs[position].Blur()
	}
	return command
}

func (form fieldsModel) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	var command tea.Cmd
	form.inputs[form.focus], command = form.inputs[form.focus].Update(message)
	return form, command
}

func (form fieldsModel) View() string {
	if form.submitted || form.cancelled {
		return ""
	}
	var builder strings.Builder
	builder.WriteString(form.theme.TitleStyle().Render(form.title))
	builder.WriteString("\n\n")
	for _, input := range form.inputs {
		builder.WriteString(input.View())
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(form.theme.HelpStyle().Render(
		helpLine(form.keys.Submit, form.keys.NextField, form.keys.Dismiss)))
	builder.WriteString("\n")
	return builder.String()
}
