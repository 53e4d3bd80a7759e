// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package logs fetches recent CloudWatch log events for a Lambda function over
// a relative time window such as "5m" or "2h".
package logs
