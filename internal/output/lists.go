// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"

	"github.com/nuoa-io/nuoa-swe/internal/logs"
)

const stampLayout = "2006-01-02 15:04:05"

// WriteFunctionNames prints the lister's result.
func WriteFunctionNames(w io.Writer, names []string) {
	if len(names) == 0 {
		fmt.Fprintln(w, "\nNo Lambda functions found matching the criteria.")
		return
	}

	fmt.Fprintf(w, "\nFound %d Lambda function(s):\n\n", len(names))
	for _, name := range names {
		fmt.Fprintf(w, "  • %s\n", name)
	}
}

// WriteLogsHeader prints which function and window is being fetched.
func WriteLogsHeader(w io.Writer, function, profile, spec string, win logs.Window) {
	fmt.Fprintf(w, "Fetching logs for '%s' (Profile: %s)\n", function, profile)
	fmt.Fprintf(w, "Time range: %s (%s to %s UTC)\n\n",
		spec,
		win.Start.UTC().Format(stampLayout),
		win.End.UTC().Format(stampLayout))
}

// WriteEvents prints log events between rules, one per line.
func WriteEvents(w io.Writer, events []logs.Event) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No log events found in the specified time range.")
		return
	}

	fmt.Fprintf(w, "Found %d log event(s):\n\n", len(events))
	fmt.Fprintln(w, doubleRule)
	for _, e := range events {
		fmt.Fprintf(w, "[%s] %s\n", e.Timestamp.UTC().Format(stampLayout), e.Message)
	}
	fmt.Fprintln(w, doubleRule)
}

// WriteBumpSummary prints the updater's final count.
func WriteBumpSummary(w io.Writer, count int) {
	fmt.Fprintf(w, "Scanned and updated %d rows.\n", count)
}
