// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for the optional user
// configuration. The configuration is a YAML document named nuoa.yaml in the
// user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/nuoa.yaml or $HOME/.config/nuoa.yaml
//   - macOS: $HOME/Library/Application Support/nuoa.yaml
//
// NUOA_CFG_FILE overrides the location. Keys may be global ("profile") or
// namespaced by subcommand ("logs.profile").
package config
