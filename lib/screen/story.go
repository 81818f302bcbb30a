// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import (
	"fmt"
	"io"

	"github.com/bureau-foundation/storyboard/lib/store"
)

// StoryDetail shows one story. It is bound to the story's epic as well,
// since deleting the story needs the parent.
type StoryDetail struct {
	store   *store.Store
	EpicID  uint32
	StoryID uint32
}

// NewStoryDetail returns the detail screen for storyID in epicID over s.
func NewStoryDetail(s *store.Store, epicID, storyID uint32) *StoryDetail {
	return &StoryDetail{store: s, EpicID: epicID, StoryID: storyID}
}

func (detail *StoryDetail) String() string {
	return fmt.Sprintf("story(%d/%d)", detail.EpicID, detail.StoryID)
}

// Render implements [Screen]. The screen is stale if either the story
// or its epic is gone.
func (detail *StoryDetail) Render(w io.Writer) error {
	state, err := detail.store.Read()
	if err != nil {
		return err
	}
	if _, exists := state.Epics[detail.EpicID]; !exists {
		return staleEpic(detail.EpicID)
	}
	story, exists := state.Stories[detail.StoryID]
	if !exists {
		return staleStory(detail.StoryID)
	}

	p := newPage()
	p.section(detailTable, "STORY")
	p.detailRow(detail.StoryID, story.Name, story.Description, story.Status)
	p.help("[p] previous | [u] update story | [d] delete story")
	return p.writeTo(w)
}

// Interpret implements [Screen]: "p" goes back, "u" updates the story's
// status, "d" deletes it. There are no numeric commands here.
func (detail *StoryDetail) Interpret(input string) (Intent, error) {
	switch input {
	case "p":
		return NavigateBack{}, nil
	case "u":
		return UpdateStoryStatus{StoryID: detail.StoryID}, nil
	case "d":
		return DeleteStory{EpicID: detail.EpicID, StoryID: detail.StoryID}, nil
	}
	return nil, nil
}
