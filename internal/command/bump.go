// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/bumper"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
	"github.com/nuoa-io/nuoa-swe/internal/output"
)

// bumpCommandAction is the action handler for the "bump-version" subcommand.
// Per-row write failures are printed by the bumper; a session or scan failure
// is returned.
func bumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	table := cmd.String("table-name")
	maxPages := int(cmd.Int("max-pages"))
	if maxPages < 0 {
		return &awsx.InvalidInputError{Err: fmt.Errorf("--max-pages must not be negative: %d", maxPages)}
	}

	ectx := awsx.ErrorContext{
		Profile:   cmd.String("aws-profile"),
		Operation: "scan table",
		Resource:  fmt.Sprintf("Table '%s'", table),
	}
	cfg, err := newSession(ctx, sessionOptions(cmd, "aws-profile")...)
	if err != nil {
		return awsx.Friendly(err, ectx)
	}

	out := outWriter(cmd)
	b := &bumper.Bumper{
		Client:   awsx.NewDynamoDB(cfg),
		Table:    table,
		Attr:     cmd.String("version-attr"),
		DryRun:   cmd.Bool("dry-run"),
		MaxPages: maxPages,
		Out:      out,
	}
	if err := runBump(ctx, out, b); err != nil {
		return awsx.Friendly(err, ectx)
	}
	return nil
}

// runBump runs b and prints the summary line.
func runBump(ctx context.Context, w io.Writer, b *bumper.Bumper) error {
	res, err := b.Run(ctx)
	if err != nil {
		return err
	}
	log.Infof("bump finished: table=%s, dry_run=%t, pages=%d, scanned=%d, updated=%d, failed=%d, skipped=%d",
		b.Table, b.DryRun, res.Pages, res.Scanned, res.Updated, res.Failed, res.Skipped)

	output.WriteBumpSummary(w, res.Count(b.DryRun))
	return nil
}

// bumpCommandBuilder constructs the cli.Command for "bump-version", wiring
// metadata, flags, and action handlers.
func bumpCommandBuilder(meta meta.Meta) *cli.Command {
	attrFlag := &cli.StringFlag{
		Name:  "version-attr",
		Usage: "numeric attribute to increment",
		Value: bumper.DefaultAttr,
	}
	if meta.Config.Source != "" {
		attrFlag = NameSpacedValueChainFlagFromConfigFile("bump-version", meta.Config.Source, attrFlag)
	}

	return (&CommandBuilder{
		Name:      "bump-version",
		Usage:     "increment the version attribute of every row in a DynamoDB table",
		UsageText: "nuoa-swe bump-version --table-name t [--dry-run=false] [--aws-profile p]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "table-name",
				Usage:    "DynamoDB table to update",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "count eligible rows without writing; --dry-run=false writes",
				Value: true,
			},
			NewProfileFlag("bump-version", meta.Config.Source, "aws-profile", false),
			attrFlag,
			&cli.IntFlag{
				Name:    "max-pages",
				Usage:   "stop after this many scan pages (0 scans the whole table)",
				Value:   0,
				Sources: cli.NewValueSourceChain(configSources("bump-version", "max-pages", meta.Config.Source)...),
			},
		},
		Action: bumpCommandAction,
		Meta:   meta,
	}).Build()
}
