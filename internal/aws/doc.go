// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws builds the AWS session shared by every subcommand, constructs
// the per-service clients and classifies SDK errors into the handful of
// failure kinds the commands report on.
package aws
