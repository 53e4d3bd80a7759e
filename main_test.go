// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/nuoa-io/nuoa-swe/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"nuoa-swe", "detect"},
			expected: []string{"nuoa-swe", "detect"},
		},
		{
			name:     "no duplicates",
			args:     []string{"nuoa-swe", "detect", "--output", "text", "--color"},
			expected: []string{"nuoa-swe", "detect", "--output", "text", "--color"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"nuoa-swe", "detect", "--output", "json", "--color", "--output", "text"},
			expected: []string{"nuoa-swe", "detect", "--color", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag",
			args:     []string{"nuoa-swe", "detect", "--color", "--dry-run", "--color"},
			expected: []string{"nuoa-swe", "detect", "--dry-run", "--color"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"nuoa-swe", "detect", "--output=json", "--color", "--output=text"},
			expected: []string{"nuoa-swe", "detect", "--color", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax - same flag",
			args:     []string{"nuoa-swe", "detect", "--output=json", "--output", "text"},
			expected: []string{"nuoa-swe", "detect", "--output", "text"},
		},
		{
			name:     "multiple different flags with duplicates",
			args:     []string{"nuoa-swe", "logs", "--function", "a", "--profile", "foo", "--function", "b", "--profile", "bar"},
			expected: []string{"nuoa-swe", "logs", "--function", "b", "--profile", "bar"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"nuoa-swe", "detect", "bash", "--output", "json", "--output", "text"},
			expected: []string{"nuoa-swe", "detect", "bash", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"nuoa-swe", "detect", "-o", "json", "-o", "text"},
			expected: []string{"nuoa-swe", "detect", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"nuoa-swe", "detect", "--color", "--no-color"},
			expected: []string{"nuoa-swe", "detect", "--color", "--no-color"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"nuoa-swe", "detect", "--output", "a", "--output", "b", "--output", "c"},
			expected: []string{"nuoa-swe", "detect", "--output", "c"},
		},
		{
			name:     "flag at end with no value treated as boolean",
			args:     []string{"nuoa-swe", "detect", "--color", "--dry-run", "--color"},
			expected: []string{"nuoa-swe", "detect", "--dry-run", "--color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := deduplicateFlags(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("deduplicateFlags(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestDeduplicateFlagsPreservesOrder(t *testing.T) {
	// Ensure non-duplicate flags maintain their relative order.
	args := []string{"nuoa-swe", "detect", "--color", "--dry-run", "--stage"}
	result := deduplicateFlags(args)
	expected := []string{"nuoa-swe", "detect", "--color", "--dry-run", "--stage"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Order not preserved: got %v, want %v", result, expected)
	}
}

func TestDeduplicateFlagsWithPositionalAfterFlags(t *testing.T) {
	// Positional args after flags should be preserved.
	args := []string{"nuoa-swe", "detect", "--output", "json", "zsh", "--output", "text"}
	result := deduplicateFlags(args)
	expected := []string{"nuoa-swe", "detect", "zsh", "--output", "text"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestInjectArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		entries   []string
		insertIdx int
		expected  []string
	}{
		{
			name:      "no entries returns args unchanged",
			args:      []string{"nuoa-swe", "detect", "--color"},
			insertIdx: 2,
			expected:  []string{"nuoa-swe", "detect", "--color"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"nuoa-swe", "detect", "--color"},
			entries:   []string{"--output yaml"},
			insertIdx: 2,
			expected:  []string{"nuoa-swe", "detect", "--output", "yaml", "--color"},
		},
		{
			name:      "insert at end",
			args:      []string{"nuoa-swe", "logs", "--function", "f"},
			entries:   []string{"--profile nuoa-prod", "--time 1h"},
			insertIdx: 4,
			expected:  []string{"nuoa-swe", "logs", "--function", "f", "--profile", "nuoa-prod", "--time", "1h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectArgs(tt.args, tt.entries, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectArgs() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestProcessCommandArgs_ExpandsSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nuoa.yaml")
	cfg := "bump-version:\n  prod:\n    - --aws-profile nuoa-prod\n    - --dry-run=true\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvFile, path)
	if _, err := config.Load(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { config.Config = config.Type{} })

	// The explicit --dry-run after the set wins.
	args := []string{"nuoa-swe", "bump-version", "@prod", "--table-name", "Reports", "--dry-run=false"}
	result := processCommandArgs(args)
	expected := []string{"nuoa-swe", "bump-version", "--aws-profile", "nuoa-prod", "--table-name", "Reports", "--dry-run=false"}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("got %v, want %v", result, expected)
	}
}

func TestProcessCommandArgs_CompletionUntouched(t *testing.T) {
	args := []string{"nuoa-swe", "completion", "bash"}
	if result := processCommandArgs(args); !reflect.DeepEqual(result, args) {
		t.Errorf("got %v, want %v", result, args)
	}
}
