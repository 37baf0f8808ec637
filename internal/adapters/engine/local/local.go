// Package local persists uploads to the filesystem.
package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Ichinga-Samuel/fastfiles/internal/config"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// Engine writes each file under the resolved destination directory, creating
// intermediate directories as needed. The record's StoredPath is the path the
// bytes can be read back from.
type Engine struct {
	cfg    config.LocalConfig
	logger *slog.Logger
}

// New returns a local disk engine. The configured root is used when a policy
// resolves to an empty destination.
func New(cfg config.LocalConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Root == "" {
		cfg.Root = "uploads"
	}
	return &Engine{cfg: cfg, logger: logger}
}

func (e *Engine) Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord {
	if err := ctx.Err(); err != nil {
		return domain.FailedRecord(req.Name, req.ContentType, err)
	}

	dir := req.Destination
	if dir == "" {
		dir = e.cfg.Root
	}
	dir = filepath.Clean(dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return e.fail(req, err)
	}

	path := filepath.Join(dir, req.Name)
	f, err := os.Create(path)
	if err != nil {
		return e.fail(req, err)
	}

	n, err := io.Copy(f, req.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return e.fail(req, err)
	}

	return domain.FileRecord{
		Filename:    req.Name,
		ContentType: req.ContentType,
		SizeBytes:   uint64(n),
		StoredPath:  path,
		Succeeded:   true,
		Message:     fmt.Sprintf("%s saved successfully", req.Name),
	}
}

func (e *Engine) fail(req *domain.StoreRequest, err error) domain.FileRecord {
	e.logger.Error("local upload failed",
		slog.String("name", req.Name),
		slog.String("destination", req.Destination),
		slog.String("error", err.Error()))
	return domain.FailedRecord(req.Name, req.ContentType, err)
}
