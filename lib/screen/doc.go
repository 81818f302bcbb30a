// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package screen implements storyboard's interactive views.
//
// A [Screen] does two things: render itself from the current store
// state, and interpret one line of user input into an [Intent]. Screens
// never mutate the store, never touch the screen stack, and never run
// prompts. Those side effects belong to the navigator, which applies
// intents. Keeping screens side-effect free makes each one testable
// with nothing more than a store and a buffer.
//
// Three screens exist:
//
//   - [Home] lists every epic.
//   - [EpicDetail] shows one epic and its stories.
//   - [StoryDetail] shows one story.
//
// A detail screen stays on the stack while the user navigates deeper,
// so the entity it is bound to can disappear underneath it. Render
// reports that case as [ErrScreenStale].
package screen
