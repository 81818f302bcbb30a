// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
)

func initCommand() *cli.Command {
	var flags options
	return &cli.Command{
		Name:    "init",
		Summary: "Create an empty state file",
		Description: `Create an empty state file at the configured path.

An existing file is left untouched. Parent directories are created as
needed. The encoding follows --format, or the file extension when the
format is auto.`,
		Flags: func() *pflag.FlagSet { return flags.flagSet("init") },
		Run: func(args []string) error {
			if err := cli.ExactArgs(args, 0, ""); err != nil {
				return err
			}
			return flags.run("init", func(env *environment) error {
				return runInit(env, os.Stdout)
			})
		},
	}
}

func runInit(env *environment, output io.Writer) error {
	// Init below, not openBackend's create_if_missing path, so the
	// outcome can be reported.
	cfg := *env.config
	cfg.Store.CreateIfMissing = false
	backend, err := openBackend(&cfg, env.logger)
	if err != nil {
		return err
	}
	created, err := backend.Init()
	if err != nil {
		return err
	}
	if created {
		env.logger.Info("created empty state file", "path", backend.Path(), "format", backend.Format())
		fmt.Fprintf(output, "created %s (%s)\n", backend.Path(), backend.Format())
		return nil
	}
	fmt.Fprintf(output, "%s already exists, left unchanged\n", backend.Path())
	return nil
}
