// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/storyboard/cmd/storyboard/cli"
	"github.com/bureau-foundation/storyboard/lib/codec"
	"github.com/bureau-foundation/storyboard/lib/store"
)

func exportCommand() *cli.Command {
	var flags options
	var force bool
	var to string
	return &cli.Command{
		Name:    "export",
		Summary: "Copy the state to another file",
		Description: `Read the state file and write it to <destination>.

The destination encoding follows --to, or its extension when --to is
auto (.cbor is CBOR, anything else JSON), so export also converts
between encodings. The state is validated before it is written.`,
		Usage: "storyboard export <destination> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := flags.flagSet("export")
			flagSet.BoolVarP(&force, "force", "f", false, "overwrite an existing destination")
			flagSet.StringVar(&to, "to", "auto", "destination encoding: auto, json, or cbor")
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "Convert a JSON board to CBOR",
				Command:     "storyboard export data/db.cbor",
			},
			{
				Description: "Back up a CBOR board as readable JSON",
				Command:     "storyboard export --store board.cbor --force backup.json",
			},
		},
		Run: func(args []string) error {
			if err := cli.ExactArgs(args, 1, "<destination>"); err != nil {
				return err
			}
			destination := args[0]
			return flags.run("export", func(env *environment) error {
				return runExport(env, exportRequest{
					destination: destination,
					format:      to,
					force:       force,
				}, os.Stdout)
			})
		},
	}
}

type exportRequest struct {
	destination string
	format      string
	force       bool
}

func runExport(env *environment, request exportRequest, output io.Writer) error {
	source, err := openBackend(env.config, env.logger)
	if err != nil {
		return err
	}
	format, err := codec.ResolveFormat(request.format, request.destination)
	if err != nil {
		return cli.Usage("--to: %w", err)
	}
	if samePath(source.Path(), request.destination) {
		return cli.Usage("destination %s is the state file itself", request.destination)
	}
	if !request.force {
		_, err := os.Stat(request.destination)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", request.destination)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking destination: %w", err)
		}
	}

	state, err := source.Read()
	if err != nil {
		return err
	}
	if err := store.NewFileBackend(request.destination, format).Write(state); err != nil {
		return err
	}

	env.logger.Info("state exported",
		"source", source.Path(),
		"destination", request.destination,
		"format", format,
		"epics", len(state.Epics),
		"stories", len(state.Stories),
	)
	fmt.Fprintf(output, "exported %d epics and %d stories to %s (%s)\n",
		len(state.Epics), len(state.Stories), request.destination, format)
	return nil
}

func samePath(a, b string) bool {
	absoluteA, errA := filepath.Abs(a)
	absoluteB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absoluteA == absoluteB
}
