package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"kryptonite/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// Uploader stores binary content and returns a public URL.
// Single round trip, no retry: any error aborts the upload.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type s3Uploader struct {
	client *s3.Client
	config utils.StorageConfig
	log    *zap.Logger
}

func NewS3Uploader(config utils.StorageConfig, log *zap.Logger) (Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(config.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AccessKey,
			config.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.Endpoint != "" {
			// MinIO-compatible stores need path-style addressing
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Uploader{
		client: client,
		config: config,
		log:    log,
	}, nil
}

func (u *s3Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.config.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	url := u.publicURL(key)

	u.log.Info("object uploaded",
		zap.String("bucket", u.config.Bucket),
		zap.String("key", key),
	)

	return url, nil
}

func (u *s3Uploader) publicURL(key string) string {
	if u.config.Endpoint != "" {
		endpoint := strings.TrimSuffix(u.config.Endpoint, "/")
		return fmt.Sprintf("%s/%s/%s", endpoint, u.config.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.config.Bucket, u.config.Region, key)
}
