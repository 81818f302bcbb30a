// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package screen

import "fmt"

// Intent is a parsed user action. The concrete types below form a
// closed set; a nil Intent means the input was not recognized.
type Intent interface {
	fmt.Stringer
	intent()
}

// NavigateToEpic opens the detail screen for an epic.
type NavigateToEpic struct {
	EpicID uint32
}

// NavigateToStory opens the detail screen for a story of an epic.
type NavigateToStory struct {
	EpicID  uint32
	StoryID uint32
}

// NavigateBack returns to the previous screen.
type NavigateBack struct{}

// CreateEpic asks for epic fields and creates it.
type CreateEpic struct{}

// UpdateEpicStatus asks for a status and assigns it to the epic.
type UpdateEpicStatus struct {
	EpicID uint32
}

// DeleteEpic asks for confirmation and deletes the epic with its
// stories.
type DeleteEpic struct {
	EpicID uint32
}

// CreateStory asks for story fields and creates it under the epic.
type CreateStory struct {
	EpicID uint32
}

// UpdateStoryStatus asks for a status and assigns it to the story.
type UpdateStoryStatus struct {
	StoryID uint32
}

// DeleteStory asks for confirmation and deletes the story from the
// epic.
type DeleteStory struct {
	EpicID  uint32
	StoryID uint32
}

// Exit closes every screen, ending the session.
type Exit struct{}

func (NavigateToEpic) intent()    {}
func (NavigateToStory) intent()   {}
func (NavigateBack) intent()      {}
func (CreateEpic) intent()        {}
func (UpdateEpicStatus) intent()  {}
func (DeleteEpic) intent()        {}
func (CreateStory) intent()       {}
func (UpdateStoryStatus) intent() {}
func (DeleteStory) intent()       {}
func (Exit) intent()              {}

func (i NavigateToEpic) String() string {
	return fmt.Sprintf("navigate-to-epic(%d)", i.EpicID)
}

func (i NavigateToStory) String() string {
	return fmt.Sprintf("navigate-to-story(%d/%d)", i.EpicID, i.StoryID)
}

func (NavigateBack) String() string { return "navigate-back" }

func (CreateEpic) String() string { return "create-epic" }

func (i UpdateEpicStatus) String() string {
	return fmt.Sprintf("update-epic-status(%d)", i.EpicID)
}

func (i DeleteEpic) String() string {
	return fmt.Sprintf("delete-epic(%d)", i.EpicID)
}

func (i CreateStory) String() string {
	return fmt.Sprintf("create-story(%d)", i.EpicID)
}

func (i UpdateStoryStatus) String() string {
	return fmt.Sprintf("update-story-status(%d)", i.StoryID)
}

func (i DeleteStory) String() string {
	return fmt.Sprintf("delete-story(%d/%d)", i.EpicID, i.StoryID)
}

func (Exit) String() string { return "exit" }
