// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/nuoa-io/nuoa-swe/internal/detector"
)

const ruleWidth = 80

var (
	doubleRule = strings.Repeat("=", ruleWidth)
	singleRule = strings.Repeat("-", ruleWidth)
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml"}

// Options controls rendering.
type Options struct {
	Format string
	Color  bool
}

// WriteReport renders detection results for region in the requested format.
func WriteReport(w io.Writer, region string, results detector.Results, opts Options) error {
	switch opts.Format {
	case "json":
		return writeReportJSON(w, region, results)
	case "yaml":
		return writeReportYAML(w, region, results)
	case "", "text":
		writeReportText(w, region, results, newStyles(opts.Color))
		return nil
	}
	return fmt.Errorf("unknown output format %q", opts.Format)
}

func writeReportText(w io.Writer, region string, results detector.Results, st styles) {
	fmt.Fprintf(w, "\n%s\n", doubleRule)
	fmt.Fprintln(w, st.title.Render("AWS Resources in Region: "+region))
	fmt.Fprintf(w, "%s\n\n", doubleRule)

	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render(fmt.Sprintf("%s (%d found):", r.Kind.Title(), len(r.Records))))
		fmt.Fprintln(w, singleRule)

		if len(r.Records) == 0 {
			fmt.Fprintln(w, "  No resources found")
			continue
		}

		for i, rec := range r.Records {
			fmt.Fprintf(w, "\n  %d. %s\n", i+1, st.name.Render(rec.Name()))
			for _, f := range rec.Details() {
				fmt.Fprintf(w, "     %s: %s\n", f.Key, displayValue(f))
			}
		}
	}
}

// displayValue adds a human-readable size next to byte counts.
func displayValue(f detector.Field) string {
	if strings.HasSuffix(f.Key, "_bytes") && f.Value.IsInt() && f.Value.Int64() >= 0 {
		return fmt.Sprintf("%s (%s)", f.Value.String(), humanize.Bytes(uint64(f.Value.Int64())))
	}
	return f.Value.String()
}

// orderedRecord marshals a record as a JSON object keeping field order.
type orderedRecord detector.Record

func (r orderedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value.Interface())
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// orderedResults marshals results as a JSON object keyed by kind, in order.
type orderedResults detector.Results

func (rs orderedResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		recs := make([]orderedRecord, len(r.Records))
		for j, rec := range r.Records {
			recs[j] = orderedRecord(rec)
		}
		k, err := json.Marshal(string(r.Kind))
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(recs)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeReportJSON(w io.Writer, region string, results detector.Results) error {
	doc := struct {
		Region    string         `json:"region"`
		Resources orderedResults `json:"resources"`
	}{Region: region, Resources: orderedResults(results)}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return nil
}

func writeReportYAML(w io.Writer, region string, results detector.Results) error {
	resources := yaml.MapSlice{}
	for _, r := range results {
		items := make([]yaml.MapSlice, 0, len(r.Records))
		for _, rec := range r.Records {
			item := yaml.MapSlice{}
			for _, f := range rec.Fields {
				item = append(item, yaml.MapItem{Key: f.Key, Value: f.Value.Interface()})
			}
			items = append(items, item)
		}
		resources = append(resources, yaml.MapItem{Key: string(r.Kind), Value: items})
	}

	out, err := yaml.Marshal(yaml.MapSlice{
		{Key: "region", Value: region},
		{Key: "resources", Value: resources},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = w.Write(out)
	return err
}
