// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"context"
	"fmt"
	"io"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/nuoa-io/nuoa-swe/internal/aws"
	"github.com/nuoa-io/nuoa-swe/internal/log"
)

// DynamoDBAPI is the subset of the DynamoDB client the detector calls.
type DynamoDBAPI interface {
	dynamodb.ListTablesAPIClient
	DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// stackStatusFilter keeps stacks that currently exist in a settled state.
var stackStatusFilter = []cfntypes.StackStatus{
	cfntypes.StackStatusCreateComplete,
	cfntypes.StackStatusUpdateComplete,
	cfntypes.StackStatusUpdateRollbackComplete,
	cfntypes.StackStatusImportComplete,
	cfntypes.StackStatusImportRollbackComplete,
}

// Detector enumerates resources of several kinds in one region. Each
// enumerator swallows its own remote errors so one failing kind never stops
// the others.
type Detector struct {
	Region         string
	Lambda         lambda.ListFunctionsAPIClient
	S3             s3.ListBucketsAPIClient
	DynamoDB       DynamoDBAPI
	CloudFormation cloudformation.ListStacksAPIClient
	APIGateway     apigateway.GetRestApisAPIClient

	// Out receives the one-line error notice for a failed kind.
	Out io.Writer
}

// New builds a Detector with real clients from cfg.
func New(cfg awsv2.Config) *Detector {
	return &Detector{
		Region:         cfg.Region,
		Lambda:         awsx.NewLambda(cfg),
		S3:             awsx.NewS3(cfg),
		DynamoDB:       awsx.NewDynamoDB(cfg),
		CloudFormation: awsx.NewCloudFormation(cfg),
		APIGateway:     awsx.NewAPIGateway(cfg),
		Out:            os.Stdout,
	}
}

// Detect runs the enumerators for kinds, in order. No kinds means all.
func (d *Detector) Detect(ctx context.Context, kinds ...Kind) Results {
	if len(kinds) == 0 {
		kinds = Kinds
	}

	results := make(Results, 0, len(kinds))
	for _, k := range kinds {
		results = append(results, Result{Kind: k, Records: d.detect(ctx, k)})
	}
	return results
}

// DetectAll runs every enumerator.
func (d *Detector) DetectAll(ctx context.Context) Results {
	return d.Detect(ctx)
}

func (d *Detector) detect(ctx context.Context, k Kind) []Record {
	var (
		records []Record
		err     error
	)

	switch k {
	case KindLambdaFunctions:
		records, err = d.lambdaFunctions(ctx)
	case KindS3Buckets:
		records, err = d.s3Buckets(ctx)
	case KindDynamoDBTables:
		records, err = d.dynamoDBTables(ctx)
	case KindCloudFormationStacks:
		records, err = d.cloudFormationStacks(ctx)
	case KindAPIGateways:
		records, err = d.apiGateways(ctx)
	default:
		err = fmt.Errorf("unknown resource kind %q", k)
	}

	if err != nil {
		log.WithError(err).WithField("kind", string(k)).Debug("detection failed")
		if d.Out != nil {
			fmt.Fprintf(d.Out, "Error detecting %s: %v\n", k.Label(), err)
		}
		return []Record{}
	}

	log.Debugf("detected %d %s", len(records), k)
	if records == nil {
		records = []Record{}
	}
	return records
}

// DetectLambdaFunctions lists every Lambda function.
func (d *Detector) DetectLambdaFunctions(ctx context.Context) []Record {
	return d.detect(ctx, KindLambdaFunctions)
}

// DetectS3Buckets lists every S3 bucket owned by the caller.
func (d *Detector) DetectS3Buckets(ctx context.Context) []Record {
	return d.detect(ctx, KindS3Buckets)
}

// DetectDynamoDBTables lists every DynamoDB table with its status and size.
func (d *Detector) DetectDynamoDBTables(ctx context.Context) []Record {
	return d.detect(ctx, KindDynamoDBTables)
}

// DetectCloudFormationStacks lists settled CloudFormation stacks.
func (d *Detector) DetectCloudFormationStacks(ctx context.Context) []Record {
	return d.detect(ctx, KindCloudFormationStacks)
}

// DetectAPIGateways lists every API Gateway REST API.
func (d *Detector) DetectAPIGateways(ctx context.Context) []Record {
	return d.detect(ctx, KindAPIGateways)
}

func (d *Detector) lambdaFunctions(ctx context.Context) ([]Record, error) {
	var records []Record

	p := lambda.NewListFunctionsPaginator(d.Lambda, &lambda.ListFunctionsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, fn := range page.Functions {
			runtime := string(fn.Runtime)
			if runtime == "" {
				runtime = "N/A"
			}
			records = append(records, NewRecord(awsv2.ToString(fn.FunctionName)).
				With("runtime", String(runtime)).
				With("arn", String(awsv2.ToString(fn.FunctionArn))).
				With("last_modified", String(awsv2.ToString(fn.LastModified))))
		}
	}

	return records, nil
}

func (d *Detector) s3Buckets(ctx context.Context) ([]Record, error) {
	var records []Record

	p := s3.NewListBucketsPaginator(d.S3, &s3.ListBucketsInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range page.Buckets {
			r := NewRecord(awsv2.ToString(b.Name))
			if b.CreationDate != nil {
				r = r.With("creation_date", Time(*b.CreationDate))
			} else {
				r = r.With("creation_date", String("N/A"))
			}
			records = append(records, r)
		}
	}

	return records, nil
}

func (d *Detector) dynamoDBTables(ctx context.Context) ([]Record, error) {
	var names []string

	p := dynamodb.NewListTablesPaginator(d.DynamoDB, &dynamodb.ListTablesInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		names = append(names, page.TableNames...)
	}

	records := make([]Record, 0, len(names))
	for _, name := range names {
		out, err := d.DynamoDB.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: awsv2.String(name),
		})
		if err != nil || out.Table == nil {
			// A table we can list but not describe is still reported.
			log.Debugf("describe table %s failed: %v", name, err)
			records = append(records, NewRecord(name).With("status", String("Unknown")))
			continue
		}

		status := string(out.Table.TableStatus)
		if status == "" {
			status = "N/A"
		}
		records = append(records, NewRecord(name).
			With("status", String(status)).
			With("item_count", Int(awsv2.ToInt64(out.Table.ItemCount))).
			With("size_bytes", Int(awsv2.ToInt64(out.Table.TableSizeBytes))))
	}

	return records, nil
}

func (d *Detector) cloudFormationStacks(ctx context.Context) ([]Record, error) {
	var records []Record

	p := cloudformation.NewListStacksPaginator(d.CloudFormation, &cloudformation.ListStacksInput{
		StackStatusFilter: stackStatusFilter,
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range page.StackSummaries {
			r := NewRecord(awsv2.ToString(s.StackName)).
				With("status", String(string(s.StackStatus)))
			if s.CreationTime != nil {
				r = r.With("creation_time", Time(*s.CreationTime))
			}
			records = append(records, r)
		}
	}

	return records, nil
}

func (d *Detector) apiGateways(ctx context.Context) ([]Record, error) {
	var records []Record

	p := apigateway.NewGetRestApisPaginator(d.APIGateway, &apigateway.GetRestApisInput{})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, api := range page.Items {
			created := String("N/A")
			if api.CreatedDate != nil {
				created = Time(*api.CreatedDate)
			}
			records = append(records, NewRecord(awsv2.ToString(api.Name)).
				With("id", String(awsv2.ToString(api.Id))).
				With("created_date", created))
		}
	}

	return records, nil
}
