// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package store mediates every read-modify-write against the persisted
// storyboard state.
//
// A [Backend] reads and writes the whole [model.State]; there is no
// partial persistence. [Store] composes the backend into the domain
// operations (create, delete, status update). Each operation is a full
// read, an in-memory mutation, and a full write, so callers never
// observe a half-applied change. The whole aggregate is the unit of
// consistency and the store is single-writer, so there is no locking.
//
// Two backends are provided:
//
//   - [FileBackend] persists to one file, JSON or CBOR by extension.
//     Writes go to a temporary sibling, are fsynced, and are renamed
//     into place, so a crash mid-write leaves the previous state intact.
//   - [MemoryBackend] keeps a deep copy in memory, for tests and for
//     callers that want a scratch store.
//
// Failures are reported with sentinel errors checkable via errors.Is:
// [ErrStoreUnavailable], [ErrCorruptState], [ErrEpicNotFound],
// [ErrStoryNotFound], [ErrInvalidStatus], [ErrIDSpaceExhausted].
package store
