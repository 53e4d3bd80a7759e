// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package logs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
)

// ErrInvalidUnit is wrapped by ParseTimeRange for an unknown unit suffix.
var ErrInvalidUnit = errors.New("invalid time unit")

var units = map[byte]time.Duration{
	'm': time.Minute,
	'h': time.Hour,
	'd': 24 * time.Hour,
}

// ParseTimeRange converts "<int><m|h|d>" (e.g. "5m", "1h", "2d") to a
// duration. The unit is case-insensitive. Errors are InvalidInputErrors.
func ParseTimeRange(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid(errors.New("empty time range"))
	}

	unit := strings.ToLower(s[len(s)-1:])[0]
	per, ok := units[unit]
	if !ok {
		return 0, invalid(fmt.Errorf("%w: %c. Use m (minutes), h (hours), or d (days)", ErrInvalidUnit, s[len(s)-1]))
	}

	value, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, invalid(fmt.Errorf("invalid time value %q: %w", s[:len(s)-1], err))
	}
	if value < 0 {
		return 0, invalid(fmt.Errorf("time value must not be negative: %d", value))
	}

	return time.Duration(value) * per, nil
}

func invalid(err error) error {
	return &awsx.InvalidInputError{Err: err}
}

// Window is an absolute [Start, End] range.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns the window of length d ending at now.
func NewWindow(now time.Time, d time.Duration) Window {
	return Window{Start: now.Add(-d), End: now}
}

// Millis returns the window bounds as millisecond epochs.
func (w Window) Millis() (start, end int64) {
	return w.Start.UnixMilli(), w.End.UnixMilli()
}
