// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bureau-foundation/storyboard/lib/codec"
	"github.com/bureau-foundation/storyboard/lib/model"
)

// FileBackend persists the state to a single file.
type FileBackend struct {
	path   string
	format codec.Format
}

// NewFileBackend returns a backend for path using the given encoding.
func NewFileBackend(path string, format codec.Format) *FileBackend {
	return &FileBackend{path: path, format: format}
}

// OpenFileBackend returns a backend for path with the encoding picked
// from its extension (see [codec.FormatForPath]).
func OpenFileBackend(path string) *FileBackend {
	return NewFileBackend(path, codec.FormatForPath(path))
}

// Path returns the state file path.
func (backend *FileBackend) Path() string {
	return backend.path
}

// Format returns the encoding used for the file.
func (backend *FileBackend) Format() codec.Format {
	return backend.format
}

// Read loads and decodes the state file. A missing or unreadable file
// is [ErrStoreUnavailable]; content that does not decode into a valid
// state, including any absent or null field, is [ErrCorruptState].
func (backend *FileBackend) Read() (*model.State, error) {
	data, err := os.ReadFile(backend.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStoreUnavailable, backend.path, err)
	}

	var wire wireState
	if err := codec.Unmarshal(backend.format, data, &wire); err != nil {
		return nil, fmt.Errorf("%w: decoding %s as %s: %w", ErrCorruptState, backend.path, backend.format, err)
	}
	state, err := wire.state()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptState, backend.path, err)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorruptState, backend.path, err)
	}
	return state, nil
}

// Write encodes state and atomically replaces the state file.
func (backend *FileBackend) Write(state *model.State) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: refusing to write invalid state: %w", ErrCorruptState, err)
	}
	data, err := codec.Marshal(backend.format, state)
	if err != nil {
		return fmt.Errorf("%w: encoding state as %s: %w", ErrCorruptState, backend.format, err)
	}
	if err := writeFileAtomic(backend.path, data); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Init writes an empty state if the file does not exist yet. It never
// overwrites an existing file. Returns true when a file was created.
func (backend *FileBackend) Init() (bool, error) {
	_, err := os.Stat(backend.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if directory := filepath.Dir(backend.path); directory != "." {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return false, fmt.Errorf("%w: creating %s: %w", ErrStoreUnavailable, directory, err)
		}
	}
	if err := backend.Write(model.NewState()); err != nil {
		return false, err
	}
	return true, nil
}

// writeFileAtomic writes data to a temporary sibling of path, syncs it,
// and renames it over path. Readers see either the old or the new
// content, never a partial write.
func writeFileAtomic(path string, data []byte) error {
	temporaryPath := path + ".tmp"

	file, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating temporary state file: %w", err)
	}

	// Write, sync, close in that order. If any step fails, remove the
	// temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary state file: %w", err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary state file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary state file: %w", err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming state file into place: %w", err)
	}

	// Sync the parent directory so the rename survives power loss.
	parentDirectory, err := os.Open(filepath.Dir(path))
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}
