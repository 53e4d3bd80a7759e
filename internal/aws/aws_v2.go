// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nuoa-io/nuoa-swe/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region and endpoint without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s, endpoint=%s", o.profile, o.region, o.endpoint)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// NewSession loads config and then resolves credentials once, so a missing
// credential chain surfaces before the first API call instead of inside it.
func NewSession(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		return awsv2.Config{}, err
	}
	if err := VerifyCredentials(ctx, cfg); err != nil {
		return awsv2.Config{}, err
	}
	return cfg, nil
}

// VerifyCredentials retrieves credentials from the config's provider chain.
// Any failure is reported as ErrNoCredentials.
func VerifyCredentials(ctx context.Context, cfg awsv2.Config) error {
	if cfg.Credentials == nil {
		return ErrNoCredentials
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		log.Debugf("credential retrieve err: err=%v", err)
		return fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}
	if !creds.HasKeys() {
		return ErrNoCredentials
	}
	log.Debugf("credentials resolved: source=%s", creds.Source)
	return nil
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithEndpoint points every client at a single base endpoint, e.g. LocalStack
// or DynamoDB Local.
func WithEndpoint(url string) Option {
	return func(o *options) { o.endpoint = url }
}

// NewS3 constructs a v2 S3 client from the provided config. Additional service
// options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	client := s3v2.NewFromConfig(cfg, optFns...)
	log.Debugf("s3 client created")
	return client
}

// NewLambda constructs a v2 Lambda client.
func NewLambda(cfg awsv2.Config, optFns ...func(*lambda.Options)) *lambda.Client {
	client := lambda.NewFromConfig(cfg, optFns...)
	log.Debugf("lambda client created")
	return client
}

// NewDynamoDB constructs a v2 DynamoDB client.
func NewDynamoDB(cfg awsv2.Config, optFns ...func(*dynamodb.Options)) *dynamodb.Client {
	client := dynamodb.NewFromConfig(cfg, optFns...)
	log.Debugf("dynamodb client created")
	return client
}

// NewCloudFormation constructs a v2 CloudFormation client.
func NewCloudFormation(cfg awsv2.Config, optFns ...func(*cloudformation.Options)) *cloudformation.Client {
	client := cloudformation.NewFromConfig(cfg, optFns...)
	log.Debugf("cloudformation client created")
	return client
}

// NewAPIGateway constructs a v2 API Gateway (REST, v1 API) client.
func NewAPIGateway(cfg awsv2.Config, optFns ...func(*apigateway.Options)) *apigateway.Client {
	client := apigateway.NewFromConfig(cfg, optFns...)
	log.Debugf("apigateway client created")
	return client
}

// NewCloudWatchLogs constructs a v2 CloudWatch Logs client.
func NewCloudWatchLogs(cfg awsv2.Config, optFns ...func(*cloudwatchlogs.Options)) *cloudwatchlogs.Client {
	client := cloudwatchlogs.NewFromConfig(cfg, optFns...)
	log.Debugf("cloudwatchlogs client created")
	return client
}
