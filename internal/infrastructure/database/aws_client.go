package database

import (
	"context"

	"valuation_report/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ConnectDynamoDB creates a DynamoDB client from cfg.
func ConnectDynamoDB(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

// ConnectS3 creates an S3 client from cfg. Path-style addressing is forced when a
// custom endpoint (MinIO, LocalStack) is configured.
func ConnectS3(ctx context.Context, cfg *config.Config) (*s3.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3Endpoint != ""
	}), nil
}

// NewAWSConfig loads the shared AWS configuration. Local endpoints do not
// validate credentials, but the AWS SDK requires them.
func NewAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(creds),
	}

	endpoints := serviceEndpoints(cfg)
	if len(endpoints) > 0 {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if url, ok := endpoints[service]; ok {
				return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

func serviceEndpoints(cfg *config.Config) map[string]string {
	out := map[string]string{}
	if cfg.DynamoDBEndpoint != "" {
		out[dynamodb.ServiceID] = cfg.DynamoDBEndpoint
	}
	if cfg.S3Endpoint != "" {
		out[s3.ServiceID] = cfg.S3Endpoint
	}
	return out
}
