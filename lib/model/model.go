// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrIDSpaceExhausted means the shared id counter has reached the
// largest representable id, so no further epic or story can be created.
var ErrIDSpaceExhausted = errors.New("id space exhausted")

// Status is the lifecycle tag attached to epics and stories. Any status
// may follow any other; there is no transition validation.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

// IsKnown reports whether status is one of the four defined tags.
func (status Status) IsKnown() bool {
	return slices.Contains(Statuses, status)
}

// String returns the human-readable label ("In Progress" rather than
// the persisted "InProgress" tag).
func (status Status) String() string {
	switch status {
	case StatusInProgress:
		return "In Progress"
	case StatusOpen, StatusResolved, StatusClosed:
		return string(status)
	default:
		return fmt.Sprintf("Unknown(%s)", string(status))
	}
}

// MarshalText encodes the persisted tag. Unknown values are rejected so
// that a corrupted in-memory status never reaches disk.
func (status Status) MarshalText() ([]byte, error) {
	if !status.IsKnown() {
		return nil, fmt.Errorf("unknown status %q", string(status))
	}
	return []byte(status), nil
}

// UnmarshalText decodes a persisted tag.
func (status *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*status = parsed
	return nil
}

// ParseStatus converts a persisted tag into a Status.
func ParseStatus(tag string) (Status, error) {
	status := Status(tag)
	if !status.IsKnown() {
		return "", fmt.Errorf("unknown status %q", tag)
	}
	return status, nil
}

// Epic is a top-level work item. Stories holds the ids of its stories in
// creation order.
type Epic struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Stories     []uint32 `json:"stories"`
}

// NewEpic returns an open epic with no stories.
func NewEpic(name, description string) Epic {
	return Epic{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
		Stories:     []uint32{},
	}
}

// HasStory reports whether storyID is listed in the epic.
func (epic Epic) HasStory(storyID uint32) bool {
	return slices.Contains(epic.Stories, storyID)
}

// Story is a leaf work item. It belongs to exactly one epic, recorded on
// the epic side only.
type Story struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// NewStory returns an open story.
func NewStory(name, description string) Story {
	return Story{
		Name:        name,
		Description: description,
		Status:      StatusOpen,
	}
}

// State is the aggregate persisted dataset. It is always read and
// written in full.
type State struct {
	LastItemID uint32           `json:"last_item_id"`
	Epics      map[uint32]Epic  `json:"epics"`
	Stories    map[uint32]Story `json:"stories"`
}

// NewState returns an empty state with a zero counter.
func NewState() *State {
	return &State{
		Epics:   make(map[uint32]Epic),
		Stories: make(map[uint32]Story),
	}
}

// NextID advances the counter and returns the new id. Once the counter
// holds the largest id it fails with [ErrIDSpaceExhausted] and leaves
// the counter unchanged; ids never wrap.
func (state *State) NextID() (uint32, error) {
	if state.LastItemID == math.MaxUint32 {
		return 0, fmt.Errorf("%w: last_item_id is %d", ErrIDSpaceExhausted, state.LastItemID)
	}
	state.LastItemID++
	return state.LastItemID, nil
}

// Clone returns a deep copy. Mutating the copy (including epic story
// lists) never affects the receiver.
func (state *State) Clone() *State {
	clone := &State{
		LastItemID: state.LastItemID,
		Epics:      make(map[uint32]Epic, len(state.Epics)),
		Stories:    make(map[uint32]Story, len(state.Stories)),
	}
	for id, epic := range state.Epics {
		epic.Stories = slices.Clone(epic.Stories)
		clone.Epics[id] = epic
	}
	for id, story := range state.Stories {
		clone.Stories[id] = story
	}
	return clone
}

// Validate checks the shape invariants a decoded state must satisfy:
// non-nil maps and story lists, known statuses, and a counter at least
// as large as every id present. Dangling story ids in an epic are
// tolerated; the store ignores them.
func (state *State) Validate() error {
	if state.Epics == nil {
		return fmt.Errorf("missing epics map")
	}
	if state.Stories == nil {
		return fmt.Errorf("missing stories map")
	}
	for id, epic := range state.Epics {
		if id > state.LastItemID {
			return fmt.Errorf("epic id %d exceeds last_item_id %d", id, state.LastItemID)
		}
		if !epic.Status.IsKnown() {
			return fmt.Errorf("epic %d: unknown status %q", id, string(epic.Status))
		}
		if epic.Stories == nil {
			return fmt.Errorf("epic %d: missing story list", id)
		}
	}
	for id, story := range state.Stories {
		if id > state.LastItemID {
			return fmt.Errorf("story id %d exceeds last_item_id %d", id, state.LastItemID)
		}
		if !story.Status.IsKnown() {
			return fmt.Errorf("story %d: unknown status %q", id, string(story.Status))
		}
	}
	return nil
}

// SortedEpicIDs returns every epic id in ascending order.
func (state *State) SortedEpicIDs() []uint32 {
	ids := make([]uint32, 0, len(state.Epics))
	for id := range state.Epics {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
