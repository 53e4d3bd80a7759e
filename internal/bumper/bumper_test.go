// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package bumper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable serves scan pages and applies puts to an in-memory copy,
// enforcing "#name = :value" conditions the way DynamoDB would.
type fakeTable struct {
	pages   [][]map[string]types.AttributeValue
	scans   []*dynamodb.ScanInput
	puts    []*dynamodb.PutItemInput
	stored  map[string]int64
	scanErr error
}

func newFakeTable(pageSizes ...int) *fakeTable {
	ft := &fakeTable{stored: map[string]int64{}}
	n := 0
	for _, size := range pageSizes {
		var page []map[string]types.AttributeValue
		for i := 0; i < size; i++ {
			id := fmt.Sprintf("row-%02d", n)
			page = append(page, row(id, int64(n)))
			ft.stored[id] = int64(n)
			n++
		}
		ft.pages = append(ft.pages, page)
	}
	return ft
}

func row(id string, version int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id":        &types.AttributeValueMemberS{Value: id},
		"versionId": &types.AttributeValueMemberN{Value: strconv.FormatInt(version, 10)},
	}
}

func (f *fakeTable) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	f.scans = append(f.scans, in)

	i := len(f.scans) - 1
	out := &dynamodb.ScanOutput{Items: f.pages[i]}
	if i < len(f.pages)-1 {
		last := f.pages[i][len(f.pages[i])-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": last["id"]}
	}
	return out, nil
}

func (f *fakeTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)

	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	var want int64
	for _, v := range in.ExpressionAttributeValues {
		want, _ = strconv.ParseInt(v.(*types.AttributeValueMemberN).Value, 10, 64)
	}
	if f.stored[id] != want {
		return nil, &types.ConditionalCheckFailedException{Message: awsv2.String("The conditional request failed")}
	}

	next, _ := strconv.ParseInt(in.Item["versionId"].(*types.AttributeValueMemberN).Value, 10, 64)
	f.stored[id] = next
	return &dynamodb.PutItemOutput{}, nil
}

func TestRun_DryRunCountsEveryPage(t *testing.T) {
	ft := newFakeTable(10, 10)
	var out bytes.Buffer
	b := &Bumper{Client: ft, Table: "Reports", DryRun: true, Out: &out}

	res, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 20, res.Count(true))
	assert.Equal(t, 2, res.Pages)
	assert.Empty(t, ft.puts)
	assert.Empty(t, out.String())
}

func TestRun_DryRunFirstPageOnly(t *testing.T) {
	ft := newFakeTable(10, 10)
	b := &Bumper{Client: ft, Table: "Reports", DryRun: true, MaxPages: 1, Out: &bytes.Buffer{}}

	res, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, res.Count(true))
	assert.Len(t, ft.scans, 1)
}

func TestRun_LiveFollowsExclusiveStartKey(t *testing.T) {
	ft := newFakeTable(2, 2, 1)
	b := &Bumper{Client: ft, Table: "Reports", Out: &bytes.Buffer{}}

	res, err := b.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, ft.scans, 3)
	assert.Nil(t, ft.scans[0].ExclusiveStartKey)
	assert.Equal(t, "row-01", ft.scans[1].ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "row-03", ft.scans[2].ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "Reports", awsv2.ToString(ft.scans[0].TableName))

	assert.Equal(t, 5, res.Count(false))
	for id, v := range ft.stored {
		n, _ := strconv.Atoi(id[len("row-"):])
		assert.Equal(t, int64(n+1), v, id)
	}
}

func TestRun_ConditionFailureDoesNotStopProcessing(t *testing.T) {
	ft := newFakeTable(3)
	// Another writer bumps B between our scan and our put.
	ft.stored["row-01"] = 7

	var out bytes.Buffer
	b := &Bumper{Client: ft, Table: "Reports", Out: &out}

	res, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count(false))
	assert.Equal(t, 1, res.Failed)
	require.Len(t, ft.puts, 3, "processing must reach C")
	assert.Equal(t, "row-02", ft.puts[2].Item["id"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, int64(7), ft.stored["row-01"])
	assert.Contains(t, out.String(), "Optimistic lock check failed:")
	assert.Contains(t, out.String(), "Update: map[id:row-00 versionId:1]")
}

func TestRun_ConditionComparesPreviousVersion(t *testing.T) {
	ft := newFakeTable(1)
	ft.pages[0][0] = row("row-00", 41)
	ft.stored["row-00"] = 41

	b := &Bumper{Client: ft, Table: "Reports", Out: &bytes.Buffer{}}
	_, err := b.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, ft.puts, 1)
	put := ft.puts[0]
	assert.Equal(t, "#0 = :0", awsv2.ToString(put.ConditionExpression))
	assert.Equal(t, map[string]string{"#0": "versionId"}, put.ExpressionAttributeNames)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "41"}, put.ExpressionAttributeValues[":0"])
	assert.Equal(t, &types.AttributeValueMemberN{Value: "42"}, put.Item["versionId"])
}

func TestRun_SkipsRowsWithoutVersion(t *testing.T) {
	ft := newFakeTable(2)
	delete(ft.pages[0][0], "versionId")

	b := &Bumper{Client: ft, Table: "Reports", Out: &bytes.Buffer{}}
	res, err := b.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Updated)
}

func TestRun_CustomAttr(t *testing.T) {
	ft := &fakeTable{
		stored: map[string]int64{"a": 1},
		pages: [][]map[string]types.AttributeValue{{{
			"id":  &types.AttributeValueMemberS{Value: "a"},
			"rev": &types.AttributeValueMemberN{Value: "1"},
		}}},
	}

	b := &Bumper{Client: ft, Table: "T", Attr: "rev", DryRun: true}
	res, err := b.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Eligible)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "2"}, ft.pages[0][0]["rev"])
}

func TestRun_ScanErrorIsFatal(t *testing.T) {
	ft := newFakeTable(1)
	ft.scanErr = &types.ResourceNotFoundException{Message: awsv2.String("Requested resource not found")}

	b := &Bumper{Client: ft, Table: "Missing", Out: &bytes.Buffer{}}
	_, err := b.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan Missing")

	var rnf *types.ResourceNotFoundException
	assert.True(t, errors.As(err, &rnf))
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name    string
		item    map[string]types.AttributeValue
		want    int64
		wantErr bool
	}{
		{name: "number", item: row("a", 9), want: 9},
		{name: "missing", item: map[string]types.AttributeValue{}, wantErr: true},
		{name: "string", item: map[string]types.AttributeValue{"versionId": &types.AttributeValueMemberS{Value: "9"}}, wantErr: true},
		{name: "fraction", item: map[string]types.AttributeValue{"versionId": &types.AttributeValueMemberN{Value: "1.5"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Version(tt.item, DefaultAttr)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoVersion)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
