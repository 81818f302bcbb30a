// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"fmt"
	"io"
	"slices"

	"github.com/bureau-foundation/storyboard/lib/store"
)

// EpicDetail shows one epic and the stories it lists.
type EpicDetail struct {
	store  *store.Store
	EpicID uint32
}

// NewEpicDetail returns the detail screen for epicID over s.
func NewEpicDetail(s *store.Store, epicID uint32) *EpicDetail {
	return &EpicDetail{store: s, EpicID: epicID}
}

func (detail *EpicDetail) String() string {
	return fmt.Sprintf("epic(%d)", detail.EpicID)
}

// Render implements [Screen]. Story ids listed by the epic but missing
// from the store are skipped.
func (detail *EpicDetail) Render(w io.Writer) error {
	state, err := detail.store.Read()
	if err != nil {
		return err
	}
	epic, exists := state.Epics[detail.EpicID]
	if !exists {
		return staleEpic(detail.EpicID)
	}

	p := newPage()
	p.section(detailTable, "EPIC")
	p.detailRow(detail.EpicID, epic.Name, epic.Description, epic.Status)
	p.blank()

	p.section(listTable, "STORIES")
	storyIDs := slices.Sorted(slices.Values(epic.Stories))
	for _, storyID := range slices.Compact(storyIDs) {
		story, exists := state.Stories[storyID]
		if !exists {
			continue
		}
		p.listRow(storyID, story.Name, story.Status)
	}
	p.help("[p] previous | [u] update epic | [d] delete epic | [c] create story | [:id:] navigate to story")
	return p.writeTo(w)
}

// Interpret implements [Screen]: "p" goes back, "u" updates the epic's
// status, "d" deletes the epic, "c" creates a story in it, and the id of
// an existing story opens that story.
func (detail *EpicDetail) Interpret(input string) (Intent, error) {
	switch input {
	case "p":
		return NavigateBack{}, nil
	case "u":
		return UpdateEpicStatus{EpicID: detail.EpicID}, nil
	case "d":
		return DeleteEpic{EpicID: detail.EpicID}, nil
	case "c":
		return CreateStory{EpicID: detail.EpicID}, nil
	}

	storyID, ok := parseID(input)
	if !ok {
		return nil, nil
	}
	state, err := detail.store.Read()
	if err != nil {
		return nil, err
	}
	if _, exists := state.Stories[storyID]; !exists {
		return nil, nil
	}
	return NavigateToStory{EpicID: detail.EpicID, StoryID: storyID}, nil
}
