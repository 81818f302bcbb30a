// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package navigator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/storyboard/lib/model"
	"github.com/bureau-foundation/storyboard/lib/screen"
	"github.com/bureau-foundation/storyboard/lib/store"
)

// ErrCancelled is returned by a prompt when the user dismisses it. The
// navigator abandons the intent without mutating anything and without
// reporting an error.
var ErrCancelled = errors.New("cancelled")

// ErrNoPrompt means an intent needed a prompt that was not configured.
var ErrNoPrompt = errors.New("prompt not configured")

// Prompts is the set of user-input callbacks the navigator consults.
// Each call blocks until the user answers.
type Prompts struct {
	// CreateEpic collects the name and description of a new epic.
	CreateEpic func() (model.Epic, error)

	// CreateStory collects the name and description of a new story.
	CreateStory func() (model.Story, error)

	// PickStatus asks for a status. ok is false when the user chose
	// none, in which case nothing is updated.
	PickStatus func() (status model.Status, ok bool, err error)

	// ConfirmDeleteEpic asks whether to delete an epic and its stories.
	ConfirmDeleteEpic func() (bool, error)

	// ConfirmDeleteStory asks whether to delete a story.
	ConfirmDeleteStory func() (bool, error)
}

// Navigator holds the screen stack and applies intents against a
// shared store.
type Navigator struct {
	screens []screen.Screen
	prompts Prompts
	store   *store.Store
	logger  *slog.Logger
}

// New returns a navigator whose stack holds a single home screen. A nil
// logger discards output.
func New(s *store.Store, prompts Prompts, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Navigator{
		screens: []screen.Screen{screen.NewHome(s)},
		prompts: prompts,
		store:   s,
		logger:  logger,
	}
}

// Current returns the top of the stack, or nil when the stack is empty.
func (navigator *Navigator) Current() screen.Screen {
	if len(navigator.screens) == 0 {
		return nil
	}
	return navigator.screens[len(navigator.screens)-1]
}

// Depth returns the number of stacked screens.
func (navigator *Navigator) Depth() int {
	return len(navigator.screens)
}

// Screens returns a copy of the stack, bottom first.
func (navigator *Navigator) Screens() []screen.Screen {
	return slices.Clone(navigator.screens)
}

// Push places s on top of the stack.
func (navigator *Navigator) Push(s screen.Screen) {
	navigator.screens = append(navigator.screens, s)
}

// SetPrompts replaces the prompt bundle.
func (navigator *Navigator) SetPrompts(prompts Prompts) {
	navigator.prompts = prompts
}

// Apply executes intent. A nil intent is a no-op. Errors from prompts
// (other than [ErrCancelled]) and from the store are returned wrapped
// with the operation name; the stack is unchanged when Apply fails.
func (navigator *Navigator) Apply(intent screen.Intent) error {
	if intent == nil {
		return nil
	}
	navigator.logger.Debug("applying intent",
		"intent", intent.String(),
		"depth", len(navigator.screens),
	)

	var err error
	switch intent := intent.(type) {
	case screen.NavigateToEpic:
		navigator.Push(screen.NewEpicDetail(navigator.store, intent.EpicID))
	case screen.NavigateToStory:
		navigator.Push(screen.NewStoryDetail(navigator.store, intent.EpicID, intent.StoryID))
	case screen.NavigateBack:
		navigator.pop()
	case screen.CreateEpic:
		err = navigator.createEpic()
	case screen.UpdateEpicStatus:
		err = navigator.updateStatus("update epic status", func(status model.Status) error {
			return navigator.store.UpdateEpicStatus(intent.EpicID, status)
		})
	case screen.DeleteEpic:
		err = navigator.confirmAndDelete("delete epic", navigator.prompts.ConfirmDeleteEpic, func() error {
			return navigator.store.DeleteEpic(intent.EpicID)
		})
	case screen.CreateStory:
		err = navigator.createStory(intent.EpicID)
	case screen.UpdateStoryStatus:
		err = navigator.updateStatus("update story status", func(status model.Status) error {
			return navigator.store.UpdateStoryStatus(intent.StoryID, status)
		})
	case screen.DeleteStory:
		err = navigator.confirmAndDelete("delete story", navigator.prompts.ConfirmDeleteStory, func() error {
			return navigator.store.DeleteStory(intent.EpicID, intent.StoryID)
		})
	case screen.Exit:
		navigator.screens = nil
	default:
		err = fmt.Errorf("unhandled intent %T", intent)
	}

	if errors.Is(err, ErrCancelled) {
		navigator.logger.Debug("prompt cancelled", "intent", intent.String())
		return nil
	}
	return err
}

// pop removes the top screen. Popping an empty stack does nothing.
func (navigator *Navigator) pop() {
	if len(navigator.screens) == 0 {
		return
	}
	navigator.screens[len(navigator.screens)-1] = nil
	navigator.screens = navigator.screens[:len(navigator.screens)-1]
}

func (navigator *Navigator) createEpic() error {
	if navigator.prompts.CreateEpic == nil {
		return fmt.Errorf("create epic: %w", ErrNoPrompt)
	}
	epic, err := navigator.prompts.CreateEpic()
	if err != nil {
		return fmt.Errorf("create epic: %w", err)
	}
	epicID, err := navigator.store.CreateEpic(epic)
	if err != nil {
		return fmt.Errorf("create epic: %w", err)
	}
	navigator.logger.Info("epic created", "epic_id", epicID)
	return nil
}

func (navigator *Navigator) createStory(epicID uint32) error {
	if navigator.prompts.CreateStory == nil {
		return fmt.Errorf("create story: %w", ErrNoPrompt)
	}
	story, err := navigator.prompts.CreateStory()
	if err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	storyID, err := navigator.store.CreateStory(story, epicID)
	if err != nil {
		return fmt.Errorf("create story: %w", err)
	}
	navigator.logger.Info("story created", "epic_id", epicID, "story_id", storyID)
	return nil
}

// updateStatus asks for a status and passes it to update. Choosing no
// status changes nothing.
func (navigator *Navigator) updateStatus(operation string, update func(model.Status) error) error {
	if navigator.prompts.PickStatus == nil {
		return fmt.Errorf("%s: %w", operation, ErrNoPrompt)
	}
	status, ok, err := navigator.prompts.PickStatus()
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if !ok {
		return nil
	}
	if err := update(status); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	navigator.logger.Info("status updated", "operation", operation, "status", string(status))
	return nil
}

// confirmAndDelete asks confirm, runs remove on a yes, and then pops the
// screen showing the deleted entity. Nothing is popped if remove fails.
func (navigator *Navigator) confirmAndDelete(operation string, confirm func() (bool, error), remove func() error) error {
	if confirm == nil {
		return fmt.Errorf("%s: %w", operation, ErrNoPrompt)
	}
	confirmed, err := confirm()
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	if !confirmed {
		return nil
	}
	if err := remove(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	navigator.pop()
	navigator.logger.Info("deleted", "operation", operation)
	return nil
}
