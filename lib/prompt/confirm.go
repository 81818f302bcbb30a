// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/storyboard/lib/tui"
)

// confirmModel asks a yes/no question. Anything but an explicit yes is
// a no; other keys are ignored until one of the bindings is pressed.
type confirmModel struct {
	question string
	keys     KeyMap
	theme    tui.Theme

	answered bool
	yes      bool
}

func newConfirmModel(question string, keys KeyMap, theme tui.Theme) confirmModel {
	return confirmModel{question: question, keys: keys, theme: theme}
}

func (confirm confirmModel) Init() tea.Cmd {
	return nil
}

func (confirm confirmModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, isKey := message.(tea.KeyMsg)
	if !isKey {
		return confirm, nil
	}
	switch {
	case key.Matches(keyMessage, confirm.keys.Yes):
		confirm.answered = true
		confirm.yes = true
		return confirm, tea.Quit
	case key.Matches(keyMessage, confirm.keys.No), key.Matches(keyMessage, confirm.keys.Dismiss):
		confirm.answered = true
		return confirm, tea.Quit
	}
	return confirm, nil
}

func (confirm confirmModel) View() string {
	if confirm.answered {
		return ""
	}
	return confirm.theme.TitleStyle().Render(confirm.question) + " " +
		confirm.theme.HelpStyle().Render("[y/N]") + "\n"
}
