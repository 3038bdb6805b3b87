package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"recipe-dashboard/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBucketNotConfigured = errors.New("AWS_S3_BUCKET is not configured")

type (
	// AwsS3 reads catalog objects from the configured bucket.
	AwsS3 interface {
		GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	}

	awsS3 struct {
		client *s3.Client
		bucket string
	}
)

// NewAwsS3 builds a client from the AWS_* settings. Static credentials are
// used when both keys are set; otherwise the default AWS chain applies.
func NewAwsS3(ctx context.Context) (AwsS3, error) {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	if bucket == "" {
		return nil, ErrBucketNotConfigured
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(utils.GetConfig("AWS_S3_REGION")),
	}
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

func (s *awsS3) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, key, err)
	}
	return out.Body, nil
}
