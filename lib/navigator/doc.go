// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package navigator owns the screen stack and applies intents.
//
// The [Navigator] is the only component that mutates the store or the
// stack in response to user input. Screens interpret input into
// intents; the navigator runs the prompt an intent needs (fields for a
// new epic, a status, a delete confirmation), calls the matching store
// operation, and pushes or pops screens.
//
// The stack starts as a single home screen. An empty stack means the
// session is over. Store failures are returned unchanged in kind
// (wrapped with the operation name) and leave the stack as it was;
// delete intents pop the current screen only after the store call
// succeeds.
//
// Prompts are injected as a [Prompts] bundle of functions, so tests
// can script user answers without a terminal.
package navigator
