// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
	"github.com/bureau-foundation/storyboard/lib/version"
)

// Root builds the storyboard command tree. With no subcommand the root
// runs the interactive session.
func Root() *cli.Command {
	var flags options
	return &cli.Command{
		Name: "storyboard",
		Description: `Storyboard: a terminal issue tracker for epics and stories.

Without a command, opens the interactive board on the configured state
file. Type an id and press enter to open an item; the footer of each
screen lists the other keys.`,
		Flags: func() *pflag.FlagSet { return flags.flagSet("storyboard") },
		Run: func(args []string) error {
			if err := cli.ExactArgs(args, 0, ""); err != nil {
				return err
			}
			return flags.run("session", func(env *environment) error {
				return runSession(env, os.Stdin, os.Stdout)
			})
		},
		Subcommands: []*cli.Command{
			initCommand(),
			listCommand(),
			exportCommand(),
			versionCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Open the board in data/db.json, creating it if needed",
				Command:     "storyboard init && storyboard",
			},
			{
				Description: "Use a CBOR state file and keep a debug log",
				Command:     "storyboard --store board.cbor --log-output storyboard.log --log-level debug",
			},
			{
				Description: "Convert the board to CBOR",
				Command:     "storyboard export data/db.cbor",
			},
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(args []string) error {
			if err := cli.ExactArgs(args, 0, ""); err != nil {
				return err
			}
			fmt.Println(version.Full())
			return nil
		},
	}
}
