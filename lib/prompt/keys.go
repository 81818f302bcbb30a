// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by all prompts. Each prompt
// consults only the bindings relevant to it.
type KeyMap struct {
	// Form.
	NextField     key.Binding
	PreviousField key.Binding
	Submit        key.Binding

	// Picker.
	Up     key.Binding
	Down   key.Binding
	Select key.Binding

	// Confirmation.
	Yes key.Binding
	No  key.Binding

	// Dismiss abandons the prompt. The picker also treats "q" as
	// dismiss; the form cannot, since q is ordinary text there.
	Dismiss       key.Binding
	DismissPicker key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next/submit"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "enter"),
		key.WithHelp("n", "no"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
	DismissPicker: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc/q", "cancel"),
	),
}

// helpLine renders bindings as "key action" pairs separated by " | ".
func helpLine(bindings ...key.Binding) string {
	line := ""
	for index, binding := range bindings {
		if index > 0 {
			line += " | "
		}
		help := binding.Help()
		line += "[" + help.Key + "] " + help.Desc
	}
	return line
}
