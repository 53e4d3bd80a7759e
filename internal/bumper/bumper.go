// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package bumper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/log"
)

// DefaultAttr is the version counter attribute bumped when none is given.
const DefaultAttr = "versionId"

// ErrNoVersion marks a row without a numeric version attribute.
var ErrNoVersion = errors.New("no numeric version attribute")

// TableAPI is the subset of the DynamoDB client the bumper calls.
type TableAPI interface {
	dynamodb.ScanAPIClient
	PutItem(context.Context, *dynamodb.PutItemInput, ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Bumper increments a numeric version attribute on every row of a table.
//
// In a dry run nothing is written and every eligible row is counted. In a live
// run each row is put back with a condition that the stored version still
// equals the value read by the scan; a row that fails the condition is
// reported and skipped, never retried.
type Bumper struct {
	Client TableAPI
	Table  string
	Attr   string
	DryRun bool

	// MaxPages stops the scan after this many pages. Zero means no limit.
	MaxPages int

	Out io.Writer
}

// Result tallies one run.
type Result struct {
	Pages    int
	Scanned  int
	Eligible int
	Updated  int
	Failed   int
	Skipped  int
}

// Count is the number reported to the user: eligible rows in a dry run,
// committed rows in a live run.
func (r Result) Count(dryRun bool) int {
	if dryRun {
		return r.Eligible
	}
	return r.Updated
}

// Run scans the table page by page and bumps each row. Scan errors abort the
// run; per-row write errors do not.
func (b *Bumper) Run(ctx context.Context) (Result, error) {
	var res Result

	attr := b.attr()
	out := b.Out
	if out == nil {
		out = os.Stdout
	}

	p := dynamodb.NewScanPaginator(b.Client, &dynamodb.ScanInput{
		TableName: awsv2.String(b.Table),
	})
	for p.HasMorePages() {
		if b.MaxPages > 0 && res.Pages >= b.MaxPages {
			log.Debugf("page limit reached: pages=%d", res.Pages)
			break
		}

		page, err := p.NextPage(ctx)
		if err != nil {
			return res, fmt.Errorf("scan %s: %w", b.Table, err)
		}
		res.Pages++
		log.Debugf("scanned page: page=%d, items=%d", res.Pages, len(page.Items))

		for _, item := range page.Items {
			res.Scanned++
			b.bump(ctx, out, attr, item, &res)
		}
	}

	return res, nil
}

// bump drives one row through read, increment and (unless dry) write.
func (b *Bumper) bump(ctx context.Context, out io.Writer, attr string, item map[string]types.AttributeValue, res *Result) {
	prev, err := Version(item, attr)
	if err != nil {
		res.Skipped++
		log.Warnf("skipping row %s: %v", Render(item), err)
		return
	}

	next := prev + 1
	item[attr] = &types.AttributeValueMemberN{Value: strconv.FormatInt(next, 10)}

	if b.DryRun {
		res.Eligible++
		return
	}

	fmt.Fprintf(out, "Update: %s\n", Render(item))

	input, err := PutInput(b.Table, attr, item, prev)
	if err != nil {
		res.Failed++
		fmt.Fprintf(out, "Optimistic lock check failed: %v\n", err)
		return
	}

	if _, err := b.Client.PutItem(ctx, input); err != nil {
		res.Failed++
		log.WithError(err).WithField("kind", awsx.Classify(err).String()).Debug("put rejected")
		fmt.Fprintf(out, "Optimistic lock check failed: %v\n", err)
		return
	}
	res.Updated++
}

func (b *Bumper) attr() string {
	if b.Attr == "" {
		return DefaultAttr
	}
	return b.Attr
}

// Version reads attr from item as an integer.
func Version(item map[string]types.AttributeValue, attr string) (int64, error) {
	av, ok := item[attr]
	if !ok {
		return 0, fmt.Errorf("%w: %s missing", ErrNoVersion, attr)
	}
	if _, isNum := av.(*types.AttributeValueMemberN); !isNum {
		return 0, fmt.Errorf("%w: %s is not a number", ErrNoVersion, attr)
	}

	var v int64
	if err := attributevalue.Unmarshal(av, &v); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoVersion, err)
	}
	return v, nil
}

// PutInput builds the conditional put for item, which already carries the
// bumped version. The condition holds only while the stored version is still
// prev.
func PutInput(table, attr string, item map[string]types.AttributeValue, prev int64) (*dynamodb.PutItemInput, error) {
	cond := expression.Name(attr).Equal(expression.Value(prev))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("build condition: %w", err)
	}

	return &dynamodb.PutItemInput{
		TableName:                 awsv2.String(table),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}, nil
}

// Render formats a row for the console.
func Render(item map[string]types.AttributeValue) string {
	var m map[string]any
	err := attributevalue.UnmarshalMapWithOptions(item, &m, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return fmt.Sprintf("<unrenderable row: %v>", err)
	}
	return fmt.Sprintf("%v", m)
}
