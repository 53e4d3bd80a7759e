// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nuoa-io/nuoa-swe/internal/command"
	"github.com/nuoa-io/nuoa-swe/internal/config"
	"github.com/nuoa-io/nuoa-swe/internal/log"
	"github.com/nuoa-io/nuoa-swe/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}

	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)

	return deduplicateFlags(args)
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Debugf("app run err: err=%v", err)
		return 1
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set
// arguments at the @set position. A set is a list of argument strings stored
// under "<command>.<set>" in the config file.
func processSetOnly(args []string) []string {
	if len(args) < 2 {
		return args
	}

	// Look for an explicit @set argument starting from index 2.
	idx := 2
	removeIdx := -1
	set := ""
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}

	// Remove the @set argument.
	args = append(args[:removeIdx], args[removeIdx+1:]...)

	setArgs, err := config.GetStringSlice(args[1] + "." + set)
	if err != nil {
		log.Warnf("argument set %s.%s not found: %v", args[1], set, err)
		return args
	}

	// Expand the set arguments at the removeIdx position.
	return injectArgs(args, setArgs, removeIdx)
}

// injectArgs splits each entry on whitespace and inserts the pieces at idx.
func injectArgs(args []string, entries []string, idx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:idx]...)
	out = append(out, expanded...)
	return append(out, args[idx:]...)
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// subcommand, so an explicit flag overrides one injected from a set. A flag
// without "=" consumes the following token as its value unless that token is
// itself a flag. Positional arguments are kept in place.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type unit struct {
		name   string
		tokens []string
	}

	var units []unit
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if !strings.HasPrefix(tok, "-") {
			units = append(units, unit{tokens: []string{tok}})
			continue
		}

		name, _, hasValue := strings.Cut(tok, "=")
		u := unit{name: name, tokens: []string{tok}}
		if !hasValue && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			u.tokens = append(u.tokens, rest[i+1])
			i++
		}
		units = append(units, u)
	}

	last := map[string]int{}
	for i, u := range units {
		if u.name != "" {
			last[u.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, u := range units {
		if u.name != "" && last[u.name] != i {
			continue
		}
		out = append(out, u.tokens...)
	}
	return out
}
