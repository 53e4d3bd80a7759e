// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/urfave/cli/v3"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/lambdas"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
	"github.com/nuoa-io/nuoa-swe/internal/output"
)

// lambdasCommandAction is the action handler for the "lambdas" subcommand.
// Failures are printed, never returned.
func lambdasCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	out := outWriter(cmd)
	profile := cmd.String("profile")
	fmt.Fprintf(out, "Fetching Lambda functions (Profile: %s)...\n", profile)

	ectx := awsx.ErrorContext{Profile: profile, Operation: "list functions"}
	cfg, err := newSession(ctx, sessionOptions(cmd, "profile")...)
	if err != nil {
		printError(out, err, ectx)
		return nil
	}

	filter := lambdas.Filter{
		Domain: cmd.String("domain"),
		Stage:  cmd.String("stage"),
	}
	runLambdas(ctx, out, awsx.NewLambda(cfg), filter, ectx)
	return nil
}

// runLambdas lists matching function names on w.
func runLambdas(ctx context.Context, w io.Writer, client lambda.ListFunctionsAPIClient, filter lambdas.Filter, ectx awsx.ErrorContext) {
	names, err := lambdas.ListFunctionNames(ctx, client, filter)
	if err != nil {
		printError(w, err, ectx)
		return
	}
	output.WriteFunctionNames(w, names)
}

// lambdasCommandBuilder constructs the cli.Command for "lambdas", wiring
// metadata, flags, and action handlers.
func lambdasCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "lambdas",
		Usage:     "list Lambda function names, optionally filtered",
		UsageText: "nuoa-swe lambdas --profile p [--domain d] [--stage s]",
		Flags: []cli.Flag{
			NewProfileFlag("lambdas", meta.Config.Source, "profile", true),
			&cli.StringFlag{
				Name:    "domain",
				Aliases: []string{"d"},
				Usage:   "keep names containing this domain (case-insensitive)",
			},
			&cli.StringFlag{
				Name:  "stage",
				Usage: "keep names containing this stage (case-insensitive)",
			},
		},
		Action: lambdasCommandAction,
		Meta:   meta,
	}).Build()
}
