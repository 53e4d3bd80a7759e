// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

// ErrNoCredentials is returned when the credential chain yields nothing usable.
var ErrNoCredentials = errors.New("aws credentials not found")

// ErrorKind is the coarse failure category a command reacts to.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNoCredentials
	KindProfileNotFound
	KindResourceNotFound
	KindConditionFailed
	KindInvalidInput
	KindRemote
)

func (k ErrorKind) String() string {
	switch k {
	case KindNoCredentials:
		return "no-credentials"
	case KindProfileNotFound:
		return "profile-not-found"
	case KindResourceNotFound:
		return "resource-not-found"
	case KindConditionFailed:
		return "condition-failed"
	case KindInvalidInput:
		return "invalid-input"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// InvalidInputError marks a local validation failure detected before any
// remote call is made.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string { return e.Err.Error() }
func (e *InvalidInputError) Unwrap() error { return e.Err }

// Classify maps an error returned by the session builder or an SDK call to an
// ErrorKind.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return KindInvalidInput
	}

	if errors.Is(err, ErrNoCredentials) {
		return KindNoCredentials
	}

	var notExist config.SharedConfigProfileNotExistError
	if errors.As(err, &notExist) {
		return KindProfileNotFound
	}

	var condErr *ddbtypes.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return KindConditionFailed
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "ResourceNotFoundException", "NotFoundException", "NoSuchBucket":
			return KindResourceNotFound
		case "ConditionalCheckFailedException":
			return KindConditionFailed
		}
		return KindRemote
	}

	// Credential failures raised while signing a request are not typed.
	if strings.Contains(err.Error(), "failed to retrieve credentials") {
		return KindNoCredentials
	}

	return KindUnknown
}

// ErrorContext carries input context for improving error messages.
type ErrorContext struct {
	Profile   string
	Operation string // e.g., "list functions", "filter log events"
	Resource  string // e.g., "Log group '/aws/lambda/x'"
}

// Friendly wraps err with a contextual, user-facing message while preserving
// the original error for errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	switch Classify(err) {
	case KindNoCredentials:
		if ctx.Profile != "" {
			return fmt.Errorf("AWS credentials not found for profile '%s'. Please configure credentials in ~/.aws/credentials: %w", ctx.Profile, err)
		}
		return fmt.Errorf("AWS credentials not found. Please configure your AWS credentials: %w", err)

	case KindProfileNotFound:
		return fmt.Errorf("AWS profile not found: %w", err)

	case KindResourceNotFound:
		return fmt.Errorf("%s not found: %w", nonEmpty(ctx.Resource, "resource"), err)

	case KindInvalidInput:
		return err

	case KindRemote, KindConditionFailed:
		return fmt.Errorf("%s: error accessing AWS: %w", nonEmpty(ctx.Operation, "request"), err)
	}

	return fmt.Errorf("%s: unexpected error: %w", nonEmpty(ctx.Operation, "request"), err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
