// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/nuoa-io/nuoa-swe/internal/output"
)

// NewProfileFlag constructs the named-profile flag. name is "profile" for most
// commands and "aws-profile" for bump-version. When path names a config file
// the value may also come from "<ns>.<name>" or "<name>" in that file.
func NewProfileFlag(ns string, path string, name string, required bool) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:     name,
		Usage:    "AWS profile name from ~/.aws/credentials",
		Required: required,
	}

	if path != "" {
		flag = NameSpacedValueChainFlagFromConfigFile(ns, path, flag)
	}

	return
}

// NewAWSFlags returns the region and endpoint overrides every AWS-backed
// command accepts.
func NewAWSFlags(ns string, path string) []cli.Flag {
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Defaults to the profile or environment region",
	}
	endpoint := &cli.StringFlag{
		Name:  "endpoint-url",
		Usage: "send every request to this endpoint, e.g. LocalStack",
	}

	if path != "" {
		region = NameSpacedValueChainFlagFromConfigFile(ns, path, region)
		endpoint = NameSpacedValueChainFlagFromConfigFile(ns, path, endpoint)
	}

	return []cli.Flag{region, endpoint}
}

// NewOutputFlags returns the report format flags.
func NewOutputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format (text, json, yaml)",
			Value:   output.Formats[0],
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(ns, flag.Name, path)...)
	return flag
}

// configSources returns the "<ns>.<name>" then "<name>" YAML lookups in path.
func configSources(ns string, name string, path string) []cli.ValueSource {
	if path == "" {
		return nil
	}
	return []cli.ValueSource{
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	}
}
