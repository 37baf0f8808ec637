package port

import (
	"context"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

// FieldProcessor binds one upload policy to one engine for one named form
// field.
type FieldProcessor interface {
	Field() string
	Process(ctx context.Context, sub *domain.Submission) domain.FieldResult
}

// Coordinator resolves a whole multi-field submission against its declared
// field processors.
type Coordinator interface {
	Process(ctx context.Context, sub *domain.Submission) domain.Result
}
