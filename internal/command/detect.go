// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/detector"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
	"github.com/nuoa-io/nuoa-swe/internal/output"
)

// errNoRegion is returned when neither the flag nor the profile names a region.
var errNoRegion = errors.New("no AWS region configured; use --region or set one for the profile")

// detectCommandAction is the action handler for the "detect" subcommand. It
// enumerates the selected resource kinds in one region and prints the report.
// Session failures are returned so the process exits non-zero.
func detectCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	kinds, _ := detector.KindsForService(cmd.String("service"))

	cfg, err := newSession(ctx, sessionOptions(cmd, "profile")...)
	if err != nil {
		return awsx.Friendly(err, awsx.ErrorContext{Operation: "detect resources"})
	}
	if cfg.Region == "" {
		return errNoRegion
	}

	out := outWriter(cmd)
	opts := output.Options{
		Format: cmd.String("output"),
		Color:  colorEnabled(cmd, out),
	}

	d := detector.New(cfg)
	d.Out = out
	if opts.Format != "text" {
		// Keep structured output parseable.
		d.Out = os.Stderr
	}

	return runDetect(ctx, out, d, kinds, opts)
}

// runDetect detects kinds with d and writes the report to w.
func runDetect(ctx context.Context, w io.Writer, d *detector.Detector, kinds []detector.Kind, opts output.Options) error {
	results := d.Detect(ctx, kinds...)
	return output.WriteReport(w, d.Region, results, opts)
}

// detectCommandBuilder constructs the cli.Command for "detect", wiring
// metadata, flags, and action handlers.
func detectCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "detect",
		Usage:     "detect AWS resources in a region",
		UsageText: "nuoa-swe detect [--profile p] [--region r] [--service s] [options]",
		Flags: append([]cli.Flag{
			NewProfileFlag("detect", meta.Config.Source, "profile", false),
			&cli.StringFlag{
				Name:    "service",
				Aliases: []string{"s"},
				Usage:   "service to detect (lambda, s3, dynamodb, cloudformation, apigateway, all)",
				Value:   "all",
				Validator: func(value string) error {
					return FlagValidators(value, ServiceValidator)
				},
			},
		}, NewOutputFlags()...),
		Action: detectCommandAction,
		Meta:   meta,
	}).Build()
}
