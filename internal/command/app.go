// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/nuoa-io/nuoa-swe/internal/config"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
)

// InitApp builds the root command. Results are printed to stdout.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	return newApp(ctx, args, os.Stdout)
}

func newApp(ctx context.Context, args []string, out io.Writer) (*cli.Command, error) {
	// The arg[1] immediately following the binary (arg[0]) is the subcommand
	// and also represents the namespace key to be used when retrieving config
	// values. arg[1] could be -h/--help, so ignore it if it appears to be a
	// flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine; every setting has a flag.
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("config not loaded: err=%v", err)
	}
	config.SetNamespace(ns)
	cfg.Namespace = ns

	meta := meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
		Out:     out,
	}

	app := &cli.Command{
		Name:   "nuoa-swe",
		Usage:  "AWS helpers for the NUOA platform",
		Writer: out,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "nuoa-swe version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		detectCommandBuilder(meta),
		lambdasCommandBuilder(meta),
		logsCommandBuilder(meta),
		bumpCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
