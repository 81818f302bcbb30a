// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package model defines the storyboard entity model: epics, the stories
// they contain, the lifecycle [Status] shared by both, and the aggregate
// [State] that is persisted as one unit.
//
// Epics and stories share a single id space. [State.LastItemID] is a
// monotonic counter; every new entity takes LastItemID+1 and ids are
// never reused, even after deletion. The epic-to-story relationship is
// held only by [Epic.Stories]; stories carry no back-reference, so the
// store is the only place allowed to mutate both sides together.
//
// This package has no behavior beyond construction, status parsing and
// deep copying. It has no storyboard-internal dependencies.
package model
