// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	"github.com/bureau-foundation/storyboard/lib/model"
)

// MemoryBackend holds the state in memory. Reads and writes exchange
// deep copies, so the semantics match a file round-trip: a caller that
// mutates a read result without writing it changes nothing.
type MemoryBackend struct {
	state *model.State

	// writeErr, when set, is returned (wrapped in ErrStoreUnavailable)
	// from every Write.
	writeErr error
	writes   int
}

// NewMemoryBackend returns a backend holding an empty state.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{state: model.NewState()}
}

// NewMemoryBackendWith returns a backend seeded with a copy of state.
func NewMemoryBackendWith(state *model.State) *MemoryBackend {
	return &MemoryBackend{state: state.Clone()}
}

// Read returns a deep copy of the held state.
func (backend *MemoryBackend) Read() (*model.State, error) {
	return backend.state.Clone(), nil
}

// Write replaces the held state with a deep copy of state.
func (backend *MemoryBackend) Write(state *model.State) error {
	if backend.writeErr != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, backend.writeErr)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: refusing to store invalid state: %w", ErrCorruptState, err)
	}
	backend.state = state.Clone()
	backend.writes++
	return nil
}

// FailWrites makes every subsequent Write fail with err. Pass nil to
// restore normal behavior.
func (backend *MemoryBackend) FailWrites(err error) {
	backend.writeErr = err
}

// Writes returns how many writes have succeeded.
func (backend *MemoryBackend) Writes() int {
	return backend.writes
}
