// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/urfave/cli/v3"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/logs"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
	"github.com/nuoa-io/nuoa-swe/internal/output"
)

// logsDefaultTime is the default look-back window.
const logsDefaultTime = "5m"

// logsCommandAction is the action handler for the "logs" subcommand. It
// prints up to logs.MaxEvents events from the function's log group. Failures
// are printed, never returned.
func logsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	out := outWriter(cmd)
	function := cmd.String("function")
	profile := cmd.String("profile")
	spec := cmd.String("time")

	// Already validated by the flag; parse again for the value.
	d, err := logs.ParseTimeRange(spec)
	if err != nil {
		printError(out, err, awsx.ErrorContext{})
		return nil
	}

	ectx := awsx.ErrorContext{
		Profile:   profile,
		Operation: "filter log events",
		Resource:  fmt.Sprintf("Log group '%s'", logs.LogGroupName(function)),
	}
	cfg, err := newSession(ctx, sessionOptions(cmd, "profile")...)
	if err != nil {
		printError(out, err, ectx)
		return nil
	}

	runLogs(ctx, out, awsx.NewCloudWatchLogs(cfg), function, profile, spec, logs.NewWindow(time.Now(), d), ectx)
	return nil
}

// runLogs fetches and prints the events of function within win.
func runLogs(ctx context.Context, w io.Writer, client cloudwatchlogs.FilterLogEventsAPIClient, function, profile, spec string, win logs.Window, ectx awsx.ErrorContext) {
	output.WriteLogsHeader(w, function, profile, spec, win)

	events, err := logs.FetchEvents(ctx, client, function, win)
	if err != nil {
		var notFound *logs.GroupNotFoundError
		if errors.As(err, &notFound) {
			log.WithError(err).Debug("log group missing")
			fmt.Fprintf(w, "Error: Log group '%s' not found.\n", notFound.Group)
			fmt.Fprintln(w, "Make sure the Lambda function name is correct.")
			return
		}
		printError(w, err, ectx)
		return
	}

	output.WriteEvents(w, events)
}

// logsCommandBuilder constructs the cli.Command for "logs", wiring metadata,
// flags, and action handlers.
func logsCommandBuilder(meta meta.Meta) *cli.Command {
	timeFlag := &cli.StringFlag{
		Name:    "time",
		Aliases: []string{"t"},
		Usage:   "look-back window: <n>m, <n>h or <n>d",
		Value:   logsDefaultTime,
		Validator: func(value string) error {
			return FlagValidators(value, TimeRangeValidator)
		},
	}
	if meta.Config.Source != "" {
		timeFlag = NameSpacedValueChainFlagFromConfigFile("logs", meta.Config.Source, timeFlag)
	}

	return (&CommandBuilder{
		Name:      "logs",
		Usage:     "fetch recent CloudWatch log events for a Lambda function",
		UsageText: "nuoa-swe logs --function f --profile p [--time 5m]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "function",
				Aliases:  []string{"f"},
				Usage:    "Lambda function name",
				Required: true,
			},
			NewProfileFlag("logs", meta.Config.Source, "profile", true),
			timeFlag,
		},
		Action: logsCommandAction,
		Meta:   meta,
	}).Build()
}
