package port

import (
	"context"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// Engine is a storage backend that persists one already-resolved byte stream.
// Put never returns an error: every failure is folded into a failed
// FileRecord so that one file can never abort its siblings.
type Engine interface {
	Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord
}
