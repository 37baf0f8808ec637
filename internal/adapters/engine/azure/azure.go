// Package azure persists uploads to Azure Blob Storage.
package azure

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"github.com/Ichinga-Samuel/fastfiles/internal/config"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// Engine streams each file to a blob container. The service client is
// constructed once from the connection string and shared by all concurrent
// uploads.
type Engine struct {
	client *azblob.Client
	cfg    config.AzureConfig
	logger *slog.Logger
}

// New fails fast on incomplete configuration: a missing connection string or
// container name is a construction-time error, never a per-upload one.
func New(cfg config.AzureConfig, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ConnectionString == "" {
		return nil, domain.ErrMissingCredentials
	}
	if cfg.Container == "" {
		return nil, domain.ErrMissingContainer
	}

	client, err := azblob.NewClientFromConnectionString(cfg.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create azure client: %w", err)
	}

	return &Engine{client: client, cfg: cfg, logger: logger}, nil
}

func (e *Engine) Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord {
	container := req.Option("container")
	if container == "" {
		container = e.cfg.Container
	}
	name := blobName(req.Destination, req.Name)

	opts := &azblob.UploadStreamOptions{}
	contentType := req.ContentType
	if ct := req.Option("content-type"); ct != "" {
		contentType = ct
	}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}

	if _, err := e.client.UploadStream(ctx, container, name, req.Body, opts); err != nil {
		e.logger.Error("azure upload failed",
			slog.String("container", container),
			slog.String("blob", name),
			slog.String("error", err.Error()))
		return domain.FailedRecord(req.Name, req.ContentType, err)
	}

	size := req.Size
	if size < 0 {
		size = 0
	}

	return domain.FileRecord{
		Filename:    req.Name,
		ContentType: req.ContentType,
		SizeBytes:   uint64(size),
		PublicURL:   blobURL(e.client.URL(), container, name),
		Succeeded:   true,
		Message:     fmt.Sprintf("%s saved successfully", req.Name),
	}
}

func blobName(destination, name string) string {
	return path.Join(strings.Trim(destination, "/"), name)
}

// blobURL builds the deterministic public URL from the service URL, the
// container and the percent-encoded blob name.
func blobURL(serviceURL, container, name string) string {
	segments := strings.Split(name, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(serviceURL, "/"), container, strings.Join(segments, "/"))
}
