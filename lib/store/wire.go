// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/bureau-foundation/storyboard/lib/model"
)

// wireState is the decoding shape of a state file. Every field is a
// pointer so an absent or null field can be told apart from a zero
// value; all of them are required.
type wireState struct {
	LastItemID *uint32               `json:"last_item_id"`
	Epics      *map[uint32]wireEpic  `json:"epics"`
	Stories    *map[uint32]wireStory `json:"stories"`
}

type wireEpic struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Status      *model.Status `json:"status"`
	Stories     *[]uint32     `json:"stories"`
}

type wireStory struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Status      *model.Status `json:"status"`
}

// state converts the decoded shape into a [model.State], failing on the
// first object with missing fields.
func (wire wireState) state() (*model.State, error) {
	if err := missingFields(
		field{"last_item_id", wire.LastItemID == nil},
		field{"epics", wire.Epics == nil},
		field{"stories", wire.Stories == nil},
	); err != nil {
		return nil, err
	}

	state := &model.State{
		LastItemID: *wire.LastItemID,
		Epics:      make(map[uint32]model.Epic, len(*wire.Epics)),
		Stories:    make(map[uint32]model.Story, len(*wire.Stories)),
	}
	for _, id := range slices.Sorted(maps.Keys(*wire.Epics)) {
		epic := (*wire.Epics)[id]
		if err := missingFields(
			field{"name", epic.Name == nil},
			field{"description", epic.Description == nil},
			field{"status", epic.Status == nil},
			field{"stories", epic.Stories == nil},
		); err != nil {
			return nil, fmt.Errorf("epic %d: %w", id, err)
		}
		state.Epics[id] = model.Epic{
			Name:        *epic.Name,
			Description: *epic.Description,
			Status:      *epic.Status,
			Stories:     append([]uint32{}, (*epic.Stories)...),
		}
	}
	for _, id := range slices.Sorted(maps.Keys(*wire.Stories)) {
		story := (*wire.Stories)[id]
		if err := missingFields(
			field{"name", story.Name == nil},
			field{"description", story.Description == nil},
			field{"status", story.Status == nil},
		); err != nil {
			return nil, fmt.Errorf("story %d: %w", id, err)
		}
		state.Stories[id] = model.Story{
			Name:        *story.Name,
			Description: *story.Description,
			Status:      *story.Status,
		}
	}
	return state, nil
}

type field struct {
	name   string
	absent bool
}

func missingFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.absent {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing or null field: %s", strings.Join(missing, ", "))
}
