// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package lambdas lists Lambda function names filtered by domain and stage.
package lambdas
