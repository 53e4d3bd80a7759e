// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package logs

import (
	"context"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/log"
)

// MaxEvents caps the events returned by one fetch. Later events in the window
// are dropped once the cap is hit.
const MaxEvents = 100

// groupPrefix is where Lambda writes its log groups.
const groupPrefix = "/aws/lambda/"

// Event is one log line.
type Event struct {
	Timestamp time.Time
	Message   string
}

// LogGroupName derives the log group of a Lambda function.
func LogGroupName(function string) string {
	return groupPrefix + function
}

// GroupNotFoundError reports a log group that does not exist, which usually
// means the function name is wrong.
type GroupNotFoundError struct {
	Group string
	Err   error
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("log group '%s' not found", e.Group)
}

func (e *GroupNotFoundError) Unwrap() error { return e.Err }

// FetchEvents returns up to MaxEvents events of function's log group within
// w, in retrieval order. Pages are requested until the continuation token is
// exhausted or the cap is reached.
func FetchEvents(ctx context.Context, client cloudwatchlogs.FilterLogEventsAPIClient, function string, w Window) ([]Event, error) {
	group := LogGroupName(function)
	start, end := w.Millis()

	p := cloudwatchlogs.NewFilterLogEventsPaginator(client, &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: awsv2.String(group),
		StartTime:    awsv2.Int64(start),
		EndTime:      awsv2.Int64(end),
		Limit:        awsv2.Int32(MaxEvents),
	})

	var events []Event
	pages := 0
	for p.HasMorePages() && len(events) < MaxEvents {
		page, err := p.NextPage(ctx)
		if err != nil {
			if awsx.Classify(err) == awsx.KindResourceNotFound {
				return nil, &GroupNotFoundError{Group: group, Err: err}
			}
			return nil, err
		}
		pages++

		for _, e := range page.Events {
			events = append(events, Event{
				Timestamp: time.UnixMilli(awsv2.ToInt64(e.Timestamp)).UTC(),
				Message:   awsv2.ToString(e.Message),
			})
		}
	}
	log.Debugf("fetched log events: group=%s, pages=%d, events=%d", group, pages, len(events))

	if len(events) > MaxEvents {
		events = events[:MaxEvents]
	}
	return events, nil
}
