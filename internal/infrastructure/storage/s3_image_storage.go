// Package storage implements product-image uploads. The rest of the system
// treats the result as an opaque URL string.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"joalheria_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrMissingImageBucket = errors.New("missing IMAGES_BUCKET")

// S3ImageStorage uploads product images to an S3 (or S3-compatible) bucket
// and returns a public object URL.
//
// Env vars:
//   - IMAGES_BUCKET (required)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, enables path-style URLs)
type S3ImageStorage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string
	log      *zap.Logger
}

var _ interfaces.IImageStorage = (*S3ImageStorage)(nil)

func NewS3ImageStorage(cfg aws.Config, log *zap.Logger) (*S3ImageStorage, error) {
	bucket := os.Getenv("IMAGES_BUCKET")
	if bucket == "" {
		return nil, ErrMissingImageBucket
	}
	if log == nil {
		log = zap.NewNop()
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ImageStorage{
		client:   client,
		bucket:   bucket,
		region:   cfg.Region,
		endpoint: endpoint,
		log:      log,
	}, nil
}

func (s *S3ImageStorage) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := "products/" + uuid.NewString() + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading %s: %w", key, err)
	}

	url := s.objectURL(key)
	s.log.Info("product image uploaded", zap.String("key", key), zap.String("url", url))
	return url, nil
}

func (s *S3ImageStorage) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(s.endpoint, "/"), s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
