// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"

	"github.com/bureau-foundation/storyboard/lib/console"
	"github.com/bureau-foundation/storyboard/lib/navigator"
	"github.com/bureau-foundation/storyboard/lib/prompt"
	"github.com/bureau-foundation/storyboard/lib/store"
)

// runSession drives the interactive board until the user quits or an
// error ends it. Screens and prompts share input and output. The
// returned error from the loop is passed through unwrapped so its exit
// code survives to main.
func runSession(env *environment, input io.Reader, output io.Writer) error {
	backend, err := openBackend(env.config, env.logger)
	if err != nil {
		return err
	}
	board := store.New(backend, env.logger)
	prompts := prompt.NewRunner(input, output).Prompts()
	nav := navigator.New(board, prompts, env.logger)

	env.logger.Info("session started", "store", backend.Path(), "format", backend.Format())
	err = console.Run(console.NewANSITerminal(input, output), nav, output, env.logger)
	if err == nil {
		env.logger.Info("session ended")
	}
	return err
}
