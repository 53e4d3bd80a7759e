// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strconv"
	"strings"
	"time"
)

type valueKind int

const (
	stringValue valueKind = iota
	intValue
	timeValue
)

// Value is a small tagged union of the field types resource records carry.
type Value struct {
	kind valueKind
	s    string
	n    int64
	t    time.Time
}

// String builds a string Value.
func String(s string) Value { return Value{kind: stringValue, s: s} }

// Int builds an integer Value.
func Int(n int64) Value { return Value{kind: intValue, n: n} }

// Time builds a timestamp Value.
func Time(t time.Time) Value { return Value{kind: timeValue, t: t} }

// IsInt reports whether v holds an integer.
func (v Value) IsInt() bool { return v.kind == intValue }

// Int64 returns the integer held by v, or 0.
func (v Value) Int64() int64 { return v.n }

// String renders v for text output. Timestamps use ISO-8601.
func (v Value) String() string {
	switch v.kind {
	case intValue:
		return strconv.FormatInt(v.n, 10)
	case timeValue:
		return v.t.Format(time.RFC3339)
	default:
		return v.s
	}
}

// Interface returns the natural Go value for structured encoders.
func (v Value) Interface() any {
	switch v.kind {
	case intValue:
		return v.n
	case timeValue:
		return v.t.Format(time.RFC3339)
	default:
		return v.s
	}
}

// Field is one named attribute of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record describes one remote resource as an ordered list of fields. The
// first field is always "name".
type Record struct {
	Fields []Field
}

// NewRecord starts a record with its name field.
func NewRecord(name string) Record {
	return Record{Fields: []Field{{Key: "name", Value: String(name)}}}
}

// With appends a field and returns the record.
func (r Record) With(key string, v Value) Record {
	r.Fields = append(r.Fields, Field{Key: key, Value: v})
	return r
}

// Name returns the record's name, or "N/A".
func (r Record) Name() string {
	if v, ok := r.Get("name"); ok {
		return v.String()
	}
	return "N/A"
}

// Get looks up a field by key.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Details returns every field except the name, in order.
func (r Record) Details() []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.Key != "name" {
			out = append(out, f)
		}
	}
	return out
}

// Kind names a resource category in the detection report.
type Kind string

const (
	KindLambdaFunctions      Kind = "lambda_functions"
	KindS3Buckets            Kind = "s3_buckets"
	KindDynamoDBTables       Kind = "dynamodb_tables"
	KindCloudFormationStacks Kind = "cloudformation_stacks"
	KindAPIGateways          Kind = "api_gateways"
)

// Kinds lists every kind in report order.
var Kinds = []Kind{
	KindLambdaFunctions,
	KindS3Buckets,
	KindDynamoDBTables,
	KindCloudFormationStacks,
	KindAPIGateways,
}

// services maps the --service flag values onto kinds.
var services = map[string]Kind{
	"lambda":         KindLambdaFunctions,
	"s3":             KindS3Buckets,
	"dynamodb":       KindDynamoDBTables,
	"cloudformation": KindCloudFormationStacks,
	"apigateway":     KindAPIGateways,
}

// Services lists the accepted --service values, "all" last.
var Services = []string{"lambda", "s3", "dynamodb", "cloudformation", "apigateway", "all"}

// KindsForService resolves a --service value. "all" and "" select every kind.
func KindsForService(service string) ([]Kind, bool) {
	service = strings.ToLower(service)
	if service == "" || service == "all" {
		return Kinds, true
	}
	k, ok := services[service]
	if !ok {
		return nil, false
	}
	return []Kind{k}, true
}

// Title renders the kind as a report heading, e.g. "LAMBDA FUNCTIONS".
func (k Kind) Title() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
}

// Label renders the kind for error messages, e.g. "Lambda functions".
func (k Kind) Label() string {
	switch k {
	case KindLambdaFunctions:
		return "Lambda functions"
	case KindS3Buckets:
		return "S3 buckets"
	case KindDynamoDBTables:
		return "DynamoDB tables"
	case KindCloudFormationStacks:
		return "CloudFormation stacks"
	case KindAPIGateways:
		return "API Gateways"
	}
	return string(k)
}

// Result pairs a kind with the records found for it.
type Result struct {
	Kind    Kind
	Records []Record
}

// Results is ordered by kind as requested.
type Results []Result

// Get returns the records for kind k and whether k was detected at all.
func (rs Results) Get(k Kind) ([]Record, bool) {
	for _, r := range rs {
		if r.Kind == k {
			return r.Records, true
		}
	}
	return nil, false
}
