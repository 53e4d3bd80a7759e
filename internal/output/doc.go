// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders command results: the resource report in text, JSON
// or YAML, and the plain console listings used by the other subcommands.
package output
