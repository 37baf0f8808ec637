// Package s3 persists uploads to an S3-compatible object store.
package s3

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Ichinga-Samuel/fastfiles/internal/config"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// Engine streams each file to a bucket under the resolved destination prefix.
// The client is constructed once and shared by all concurrent uploads.
type Engine struct {
	client *minio.Client
	cfg    config.S3Config
	logger *slog.Logger
}

// New builds the client and fails fast on incomplete configuration: a missing
// bucket or credential pair is a construction-time error, never a per-upload
// one. When CreateBucket is set the bucket is created if absent, which also
// verifies the endpoint is reachable.
func New(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" {
		return nil, domain.ErrMissingBucket
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, domain.ErrMissingCredentials
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	if cfg.CreateBucket {
		exists, err := client.BucketExists(ctx, cfg.Bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
				return nil, fmt.Errorf("failed to create bucket: %w", err)
			}
		}
	}

	return &Engine{client: client, cfg: cfg, logger: logger}, nil
}

func (e *Engine) Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord {
	bucket := req.Option("bucket")
	if bucket == "" {
		bucket = e.cfg.Bucket
	}
	key := objectKey(req.Destination, req.Name)

	opts := minio.PutObjectOptions{ContentType: req.ContentType}
	if ct := req.Option("content-type"); ct != "" {
		opts.ContentType = ct
	}
	if cc := req.Option("cache-control"); cc != "" {
		opts.CacheControl = cc
	}
	if acl := req.Option("acl"); acl != "" {
		opts.UserMetadata = map[string]string{"x-amz-acl": acl}
	}

	size := req.Size
	if size <= 0 {
		size = -1 // let the client stream with unknown length
	}

	info, err := e.client.PutObject(ctx, bucket, key, req.Body, size, opts)
	if err != nil {
		e.logger.Error("s3 upload failed",
			slog.String("bucket", bucket),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return domain.FailedRecord(req.Name, req.ContentType, err)
	}

	return domain.FileRecord{
		Filename:    req.Name,
		ContentType: req.ContentType,
		SizeBytes:   uint64(info.Size),
		PublicURL:   e.ObjectURL(bucket, key),
		Succeeded:   true,
		Message:     fmt.Sprintf("%s saved successfully", req.Name),
	}
}

// ObjectURL returns the deterministic public URL for an uploaded key:
// virtual-host style for AWS endpoints, path style for any other
// S3-compatible endpoint.
func (e *Engine) ObjectURL(bucket, key string) string {
	if e.cfg.Endpoint == "" || strings.HasSuffix(e.cfg.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, e.cfg.Region, escapeKey(key))
	}
	scheme := "http"
	if e.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, e.cfg.Endpoint, bucket, escapeKey(key))
}

// objectKey joins the destination prefix and the resolved filename with
// forward slashes, whatever separators the prefix carried.
func objectKey(destination, name string) string {
	return path.Join(strings.Trim(destination, "/"), name)
}

// escapeKey percent-encodes each key segment, keeping the slashes.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
