// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lambdas

import (
	"context"
	"sort"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/nuoa-io/nuoa-swe/internal/log"
)

// Filter selects function names by case-insensitive substrings. Empty fields
// are ignored; every non-empty field must match.
type Filter struct {
	Domain string
	Stage  string
}

// Match reports whether name contains every non-empty filter substring.
func (f Filter) Match(name string) bool {
	lower := strings.ToLower(name)
	for _, want := range []string{f.Domain, f.Stage} {
		if want != "" && !strings.Contains(lower, strings.ToLower(want)) {
			return false
		}
	}
	return true
}

// ListFunctionNames pages through every function in the account and returns
// the names accepted by filter, sorted.
func ListFunctionNames(ctx context.Context, client lambda.ListFunctionsAPIClient, filter Filter) ([]string, error) {
	var names []string

	pages := 0
	p := lambda.NewListFunctionsPaginator(client, &lambda.ListFunctionsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		pages++

		for _, fn := range page.Functions {
			name := awsv2.ToString(fn.FunctionName)
			if !filter.Match(name) {
				log.Tracef("skipping %s", name)
				continue
			}
			names = append(names, name)
		}
	}
	log.Debugf("listed functions: pages=%d, matched=%d", pages, len(names))

	sort.Strings(names)
	return names, nil
}
