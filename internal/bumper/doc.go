// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package bumper scans a DynamoDB table and increments a version counter on
// every row, writing each row back with an optimistic-lock condition.
package bumper
