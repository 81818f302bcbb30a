// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"io"

	"github.com/bureau-foundation/storyboard/lib/store"
)

// Home lists every epic, sorted by id.
type Home struct {
	store *store.Store
}

// NewHome returns the home screen over s.
func NewHome(s *store.Store) *Home {
	return &Home{store: s}
}

func (home *Home) String() string { return "home" }

// Render implements [Screen].
func (home *Home) Render(w io.Writer) error {
	state, err := home.store.Read()
	if err != nil {
		return err
	}

	p := newPage()
	p.section(listTable, "EPICS")
	for _, epicID := range state.SortedEpicIDs() {
		epic := state.Epics[epicID]
		p.listRow(epicID, epic.Name, epic.Status)
	}
	p.help("[q] quit | [c] create epic | [:id:] navigate to epic")
	return p.writeTo(w)
}

// Interpret implements [Screen]: "q" exits, "c" creates an epic, and
// the id of an existing epic opens it.
func (home *Home) Interpret(input string) (Intent, error) {
	switch input {
	case "q":
		return Exit{}, nil
	case "c":
		return CreateEpic{}, nil
	}

	epicID, ok := parseID(input)
	if !ok {
		return nil, nil
	}
	state, err := home.store.Read()
	if err != nil {
		return nil, err
	}
	if _, exists := state.Epics[epicID]; !exists {
		return nil, nil
	}
	return NavigateToEpic{EpicID: epicID}, nil
}
