// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
	"github.com/bureau-foundation/storyboard/lib/screen"
	"github.com/bureau-foundation/storyboard/lib/store"
)

func listCommand() *cli.Command {
	var flags options
	return &cli.Command{
		Name:    "list",
		Summary: "Print the epic list and exit",
		Description: `Print the epic list exactly as the interactive home screen shows it,
then exit. Nothing is written.`,
		Flags: func() *pflag.FlagSet { return flags.flagSet("list") },
		Run: func(args []string) error {
			if err := cli.ExactArgs(args, 0, ""); err != nil {
				return err
			}
			return flags.run("list", func(env *environment) error {
				return runList(env, os.Stdout)
			})
		},
	}
}

func runList(env *environment, output io.Writer) error {
	backend, err := openBackend(env.config, env.logger)
	if err != nil {
		return err
	}
	return screen.NewHome(store.New(backend, env.logger)).Render(output)
}
