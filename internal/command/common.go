// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
)

// newSession opens the AWS session for an action. Tests replace it.
var newSession func(context.Context, ...awsx.Option) (awsv2.Config, error) = awsx.NewSession

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// outWriter returns where the command prints its results.
func outWriter(cmd *cli.Command) io.Writer {
	if m := GetMeta(cmd); m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// sessionOptions maps the profile flag named profileFlag plus --region and
// --endpoint-url onto session options. Empty values are left to the SDK's
// default chain.
func sessionOptions(cmd *cli.Command, profileFlag string) []awsx.Option {
	var opts []awsx.Option
	if p := cmd.String(profileFlag); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}
	if e := cmd.String("endpoint-url"); e != "" {
		opts = append(opts, awsx.WithEndpoint(e))
	}
	return opts
}

// printError reports err as a one-line "Error: ..." message on w. Used by the
// commands whose failures are printed rather than turned into an exit code.
func printError(w io.Writer, err error, ectx awsx.ErrorContext) {
	log.WithError(err).WithField("kind", awsx.Classify(err).String()).Debug("command failed")
	fmt.Fprintf(w, "Error: %v\n", awsx.Friendly(err, ectx))
}

// colorEnabled reports whether --color was set and w is a terminal.
func colorEnabled(cmd *cli.Command, w io.Writer) bool {
	if !cmd.Bool("color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
