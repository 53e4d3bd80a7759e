// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"slices"

	"github.com/nuoa-io/nuoa-swe/internal/detector"
	"github.com/nuoa-io/nuoa-swe/internal/logs"
	"github.com/nuoa-io/nuoa-swe/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Formats, s) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

// ServiceValidator accepts a single service name or "all".
func ServiceValidator(value any) error {
	s, _ := value.(string)
	if _, ok := detector.KindsForService(s); !ok || s == "" {
		return fmt.Errorf("must be one of %v", detector.Services)
	}
	return nil
}

// TimeRangeValidator rejects anything ParseTimeRange would, so a malformed
// range fails before any session is opened.
func TimeRangeValidator(value any) error {
	s, _ := value.(string)
	_, err := logs.ParseTimeRange(s)
	return err
}
