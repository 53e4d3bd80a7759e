// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/nuoa-io/nuoa-swe/internal/detector"
	"github.com/nuoa-io/nuoa-swe/internal/logs"
)

func sampleResults() detector.Results {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return detector.Results{
		{Kind: detector.KindLambdaFunctions, Records: []detector.Record{
			detector.NewRecord("report-api").
				With("runtime", detector.String("python3.12")).
				With("arn", detector.String("arn:aws:lambda:us-east-1:123:function:report-api")),
			detector.NewRecord("report-worker").
				With("runtime", detector.String("N/A")),
		}},
		{Kind: detector.KindS3Buckets, Records: []detector.Record{}},
		{Kind: detector.KindDynamoDBTables, Records: []detector.Record{
			detector.NewRecord("Reports").
				With("status", detector.String("ACTIVE")).
				With("item_count", detector.Int(12)).
				With("size_bytes", detector.Int(2048)),
		}},
		{Kind: detector.KindCloudFormationStacks, Records: []detector.Record{
			detector.NewRecord("core").
				With("status", detector.String("CREATE_COMPLETE")).
				With("creation_time", detector.Time(created)),
		}},
	}
}

func TestWriteReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "us-east-1", sampleResults(), Options{Format: "text"}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "\n"+strings.Repeat("=", 80)+"\nAWS Resources in Region: us-east-1\n"))
	assert.Contains(t, out, "\nLAMBDA FUNCTIONS (2 found):\n"+strings.Repeat("-", 80)+"\n")
	assert.Contains(t, out, "\n  1. report-api\n     runtime: python3.12\n     arn: arn:aws:lambda:us-east-1:123:function:report-api\n")
	assert.Contains(t, out, "\n  2. report-worker\n     runtime: N/A\n")
	assert.Contains(t, out, "S3 BUCKETS (0 found):\n"+strings.Repeat("-", 80)+"\n  No resources found\n")
	assert.Contains(t, out, "     item_count: 12\n")
	assert.Contains(t, out, "     size_bytes: 2048 (2.0 kB)\n")
	assert.Contains(t, out, "     creation_time: 2024-03-01T12:00:00Z\n")
	assert.NotContains(t, out, "name: report-api")
}

func TestWriteReport_DefaultFormatIsText(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteReport(&a, "eu-west-1", sampleResults(), Options{}))
	require.NoError(t, WriteReport(&b, "eu-west-1", sampleResults(), Options{Format: "text"}))
	assert.Equal(t, b.String(), a.String())
}

func TestWriteReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "us-east-1", sampleResults(), Options{Format: "json"}))

	var doc struct {
		Region    string                      `json:"region"`
		Resources map[string][]map[string]any `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "us-east-1", doc.Region)
	assert.Len(t, doc.Resources["lambda_functions"], 2)
	assert.Empty(t, doc.Resources["s3_buckets"])
	assert.NotNil(t, doc.Resources["s3_buckets"])
	assert.Equal(t, float64(2048), doc.Resources["dynamodb_tables"][0]["size_bytes"])
	assert.Equal(t, "2024-03-01T12:00:00Z", doc.Resources["cloudformation_stacks"][0]["creation_time"])

	// Kinds and fields keep their order in the raw document.
	out := buf.String()
	assert.Less(t, strings.Index(out, `"lambda_functions"`), strings.Index(out, `"s3_buckets"`))
	assert.Less(t, strings.Index(out, `"s3_buckets"`), strings.Index(out, `"dynamodb_tables"`))
	assert.Less(t, strings.Index(out, `"status"`), strings.Index(out, `"item_count"`))
}

func TestWriteReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "us-east-1", sampleResults(), Options{Format: "yaml"}))

	var doc yaml.MapSlice
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc, 2)
	assert.Equal(t, "region", doc[0].Key)
	assert.Equal(t, "us-east-1", doc[0].Value)

	resources, ok := doc[1].Value.(yaml.MapSlice)
	require.True(t, ok)
	var kinds []any
	for _, item := range resources {
		kinds = append(kinds, item.Key)
	}
	assert.Equal(t, []any{"lambda_functions", "s3_buckets", "dynamodb_tables", "cloudformation_stacks"}, kinds)

	tables := resources[2].Value.([]any)
	first := tables[0].(yaml.MapSlice)
	var keys []any
	for _, item := range first {
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []any{"name", "status", "item_count", "size_bytes"}, keys)
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	err := WriteReport(&bytes.Buffer{}, "us-east-1", nil, Options{Format: "xml"})
	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestDisplayValue(t *testing.T) {
	tests := []struct {
		name  string
		field detector.Field
		want  string
	}{
		{"bytes", detector.Field{Key: "size_bytes", Value: detector.Int(1500000)}, "1500000 (1.5 MB)"},
		{"count", detector.Field{Key: "item_count", Value: detector.Int(1500000)}, "1500000"},
		{"string bytes", detector.Field{Key: "size_bytes", Value: detector.String("N/A")}, "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayValue(tt.field))
		})
	}
}

func TestWriteFunctionNames(t *testing.T) {
	var buf bytes.Buffer
	WriteFunctionNames(&buf, []string{"a-beta", "b-beta"})
	assert.Equal(t, "\nFound 2 Lambda function(s):\n\n  • a-beta\n  • b-beta\n", buf.String())

	buf.Reset()
	WriteFunctionNames(&buf, nil)
	assert.Equal(t, "\nNo Lambda functions found matching the criteria.\n", buf.String())
}

func TestWriteLogs(t *testing.T) {
	end := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC)
	win := logs.NewWindow(end, 5*time.Minute)

	var buf bytes.Buffer
	WriteLogsHeader(&buf, "report-api", "nuoa-beta", "5m", win)
	assert.Equal(t,
		"Fetching logs for 'report-api' (Profile: nuoa-beta)\n"+
			"Time range: 5m (2024-05-02 10:25:00 to 2024-05-02 10:30:00 UTC)\n\n",
		buf.String())

	buf.Reset()
	WriteEvents(&buf, []logs.Event{
		{Timestamp: end.Add(-time.Minute), Message: "START"},
		{Timestamp: end, Message: "END"},
	})
	rule := strings.Repeat("=", 80)
	assert.Equal(t,
		"Found 2 log event(s):\n\n"+rule+"\n[2024-05-02 10:29:00] START\n[2024-05-02 10:30:00] END\n"+rule+"\n",
		buf.String())

	buf.Reset()
	WriteEvents(&buf, nil)
	assert.Equal(t, "No log events found in the specified time range.\n", buf.String())
}

func TestWriteBumpSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteBumpSummary(&buf, 20)
	assert.Equal(t, "Scanned and updated 20 rows.\n", buf.String())
}

func TestNewStyles(t *testing.T) {
	t.Setenv("NUOA_CFG_FILE", "/nonexistent/nuoa.yaml")

	st := newStyles(false)
	assert.Equal(t, "AWS", st.title.Render("AWS"))

	st = newStyles(true)
	assert.Contains(t, st.heading.Render("S3 BUCKETS"), "S3 BUCKETS")
}
