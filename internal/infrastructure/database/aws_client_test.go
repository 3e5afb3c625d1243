package database

import (
	"context"
	"testing"

	"valuation_report/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestServiceEndpoints(t *testing.T) {
	cfg := &config.Config{DynamoDBEndpoint: "http://dynamodb:8000"}
	got := serviceEndpoints(cfg)
	if got[dynamodb.ServiceID] != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoints: %v", got)
	}
	if _, ok := got[s3.ServiceID]; ok {
		t.Fatalf("s3 endpoint must be absent")
	}

	cfg.S3Endpoint = "http://minio:9000"
	if got := serviceEndpoints(cfg); got[s3.ServiceID] != "http://minio:9000" {
		t.Fatalf("unexpected endpoints: %v", got)
	}
}

func TestNewAWSConfig(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://dynamodb:8000",
	}
	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if awsCfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region %q", awsCfg.Region)
	}
	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials: %+v err=%v", creds, err)
	}
}
