// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/storyboard/lib/model"
)

var (
	// ErrStoreUnavailable means the backing medium could not be opened,
	// read, or written.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrCorruptState means the stored content does not decode into the
	// expected shape.
	ErrCorruptState = errors.New("corrupt state")

	// ErrEpicNotFound means the referenced epic id is absent.
	ErrEpicNotFound = errors.New("epic not found")

	// ErrStoryNotFound means the referenced story id is absent.
	ErrStoryNotFound = errors.New("story not found")

	// ErrInvalidStatus means a status outside the four defined tags was
	// passed to an update.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrIDSpaceExhausted means the id counter is at its maximum and a
	// create cannot be given a fresh id.
	ErrIDSpaceExhausted = model.ErrIDSpaceExhausted
)

// Backend reads and writes the full aggregate state. Failures must wrap
// [ErrStoreUnavailable] (medium unreadable or unwritable) or
// [ErrCorruptState] (content that does not match the state shape, in
// either direction).
type Backend interface {
	Read() (*model.State, error)
	Write(state *model.State) error
}

// Store implements the domain operations over a Backend. A single Store
// is shared by everything that reads or mutates state during a run.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// New creates a Store over backend. A nil logger discards output.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{backend: backend, logger: logger}
}

// Read returns the current state. The returned value is owned by the
// caller; mutating it has no effect on the store.
func (store *Store) Read() (*model.State, error) {
	return store.backend.Read()
}

// CreateEpic inserts epic under the next id and returns that id. The new
// epic starts with an empty story list regardless of what was passed in,
// and a zero status reads as open.
func (store *Store) CreateEpic(epic model.Epic) (uint32, error) {
	if epic.Status == "" {
		epic.Status = model.StatusOpen
	}
	var epicID uint32
	err := store.update("create-epic", func(state *model.State) error {
		var err error
		if epicID, err = state.NextID(); err != nil {
			return err
		}
		epic.Stories = []uint32{}
		state.Epics[epicID] = epic
		return nil
	})
	if err != nil {
		return 0, err
	}
	return epicID, nil
}

// CreateStory inserts story under the next id and appends that id to the
// parent epic's story list. Fails with [ErrEpicNotFound] (leaving the
// state untouched) when the epic does not exist.
func (store *Store) CreateStory(story model.Story, epicID uint32) (uint32, error) {
	if story.Status == "" {
		story.Status = model.StatusOpen
	}
	var storyID uint32
	err := store.update("create-story", func(state *model.State) error {
		epic, exists := state.Epics[epicID]
		if !exists {
			return fmt.Errorf("%w: %d", ErrEpicNotFound, epicID)
		}
		var err error
		if storyID, err = state.NextID(); err != nil {
			return err
		}
		state.Stories[storyID] = story
		epic.Stories = append(slices.Clone(epic.Stories), storyID)
		state.Epics[epicID] = epic
		return nil
	})
	if err != nil {
		return 0, err
	}
	return storyID, nil
}

// DeleteEpic removes the epic and every story listed in it. Listed ids
// with no matching story are skipped. The id counter is not rewound;
// ids are never reused.
func (store *Store) DeleteEpic(epicID uint32) error {
	return store.update("delete-epic", func(state *model.State) error {
		epic, exists := state.Epics[epicID]
		if !exists {
			return fmt.Errorf("%w: %d", ErrEpicNotFound, epicID)
		}
		for _, storyID := range epic.Stories {
			if _, exists := state.Stories[storyID]; !exists {
				store.logger.Warn("epic lists missing story",
					"epic_id", epicID,
					"story_id", storyID,
				)
				continue
			}
			delete(state.Stories, storyID)
		}
		delete(state.Epics, epicID)
		return nil
	})
}

// DeleteStory removes the story and drops its id from the named epic's
// story list. The epic must exist; the story id being absent from the
// list (or from the story map) is tolerated.
func (store *Store) DeleteStory(epicID, storyID uint32) error {
	return store.update("delete-story", func(state *model.State) error {
		epic, exists := state.Epics[epicID]
		if !exists {
			return fmt.Errorf("%w: %d", ErrEpicNotFound, epicID)
		}
		delete(state.Stories, storyID)
		epic.Stories = slices.DeleteFunc(slices.Clone(epic.Stories), func(id uint32) bool {
			return id == storyID
		})
		state.Epics[epicID] = epic
		return nil
	})
}

// UpdateEpicStatus overwrites the epic's status. Any status may follow
// any other.
func (store *Store) UpdateEpicStatus(epicID uint32, status model.Status) error {
	if !status.IsKnown() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
	}
	return store.update("update-epic-status", func(state *model.State) error {
		epic, exists := state.Epics[epicID]
		if !exists {
			return fmt.Errorf("%w: %d", ErrEpicNotFound, epicID)
		}
		epic.Status = status
		state.Epics[epicID] = epic
		return nil
	})
}

// UpdateStoryStatus overwrites the story's status.
func (store *Store) UpdateStoryStatus(storyID uint32, status model.Status) error {
	if !status.IsKnown() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
	}
	return store.update("update-story-status", func(state *model.State) error {
		story, exists := state.Stories[storyID]
		if !exists {
			return fmt.Errorf("%w: %d", ErrStoryNotFound, storyID)
		}
		story.Status = status
		state.Stories[storyID] = story
		return nil
	})
}

// update runs one read-mutate-write cycle. Nothing is written when read
// or mutate fails.
func (store *Store) update(operation string, mutate func(*model.State) error) error {
	state, err := store.backend.Read()
	if err != nil {
		return err
	}
	if err := mutate(state); err != nil {
		return err
	}
	if err := store.backend.Write(state); err != nil {
		return err
	}
	store.logger.Debug("state written",
		"operation", operation,
		"last_item_id", state.LastItemID,
		"epics", len(state.Epics),
		"stories", len(state.Stories),
	)
	return nil
}
