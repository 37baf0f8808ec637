// Package memory buffers uploads in process memory.
package memory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// Engine reads the whole byte source into the record's InlineBytes. It has no
// external side effect; the only failure mode is a read error from the
// source.
type Engine struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

func (e *Engine) Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord {
	if err := ctx.Err(); err != nil {
		return domain.FailedRecord(req.Name, req.ContentType, err)
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		e.logger.Error("memory upload failed",
			slog.String("name", req.Name),
			slog.String("error", err.Error()))
		return domain.FailedRecord(req.Name, req.ContentType, err)
	}

	return domain.FileRecord{
		Filename:    req.Name,
		ContentType: req.ContentType,
		SizeBytes:   uint64(len(data)),
		InlineBytes: data,
		Succeeded:   true,
		Message:     fmt.Sprintf("%s saved successfully", req.Name),
	}
}
