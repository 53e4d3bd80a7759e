// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/nuoa-io/nuoa-swe/internal/config"
	"github.com/nuoa-io/nuoa-swe/internal/meta"
)

// CommandBuilder constructs a cli.Command for the AWS-backed subcommands
// (detect, lambdas, logs, bump-version) using a consistent pattern. The
// builder wires metadata, appends the region and endpoint flags, and points
// config lookups at the command's namespace before the action runs.
type CommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		UsageText: cb.UsageText,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags: append(cb.Flags, NewAWSFlags(cb.Name, cb.Meta.Config.Source)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			config.SetNamespace(cb.Name)
			return ctx, nil
		},
		Action: cb.Action,
	}
}
