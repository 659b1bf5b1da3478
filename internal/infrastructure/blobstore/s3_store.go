package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/bereketsol/Reelbite/internal/domain/contract"
)

// S3BlobStore stores uploaded videos in an S3 bucket and returns durable URLs
// built from a configured public base URL.
type S3BlobStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

var _ contract.IBlobStore = (*S3BlobStore)(nil)

// NewS3BlobStore creates a blob store backed by the given S3 client.
func NewS3BlobStore(client *s3.Client, bucket, publicBaseURL string) *S3BlobStore {
	return &S3BlobStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// NewS3Client builds an S3 client from the ambient AWS configuration.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// Upload writes the bytes under videos/<fileName> and returns the durable URL.
func (s *S3BlobStore) Upload(ctx context.Context, data []byte, fileName string) (string, error) {
	key := "videos/" + fileName
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + key, nil
}
