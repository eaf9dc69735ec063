// Package s3 implements a kv Store over an S3-compatible backend (AWS S3 or
// MinIO). One object per collection key, single bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"fieldcore/internal/kv/core"
)

// Compile-time contract assertion.
var _ core.Store = (*Store)(nil)

// Store implements core.Store against a single bucket.
type Store struct {
	client *s3.Client
	bucket string
}

// Config holds explicit construction parameters (mostly for tests). For prod
// we rely primarily on environment variables.
type Config struct {
	Region    string
	Bucket    string
	Endpoint  string // optional; if set enables custom endpoint (e.g. MinIO)
	PathStyle bool
}

// Environment variables:
//   FIELDCORE_KV_DRIVER=s3
//   FIELDCORE_KV_S3_BUCKET=<bucket> (required)
//   FIELDCORE_KV_S3_REGION=<region> (default us-east-1)
//   FIELDCORE_KV_S3_ENDPOINT=<url> (optional, for MinIO)
//   FIELDCORE_KV_S3_PATH_STYLE=true|false (default false)
//   AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

// New creates an S3 kv store from Config.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &Store{client: client, bucket: cfg.Bucket}, nil
}

// OpenFromEnv constructs an S3 store from process environment.
func OpenFromEnv(ctx context.Context) (*Store, error) {
	bucket := os.Getenv("FIELDCORE_KV_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("FIELDCORE_KV_S3_BUCKET required for s3 driver")
	}
	cfg := Config{
		Bucket:    bucket,
		Region:    os.Getenv("FIELDCORE_KV_S3_REGION"),
		Endpoint:  os.Getenv("FIELDCORE_KV_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("FIELDCORE_KV_S3_PATH_STYLE"), "true"),
	}
	return New(ctx, cfg)
}

// Driver returns the kv driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverS3 }

// Get fetches the object for key; a NoSuchKey / NotFound response maps to an
// absent key rather than an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, err
	}
	defer func() { _ = out.Body.Close() }()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Set uploads the blob for key, overwriting any existing object.
func (s *Store) Set(ctx context.Context, key, value string) error {
	ct := "application/json"
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader([]byte(value)),
		ContentType: &ct,
	})
	return err
}

// Remove deletes the object for key. S3 deletes are idempotent, matching the
// missing-key-is-a-no-op contract.
func (s *Store) Remove(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	return err
}

func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
