// Package store coordinates multiple field processors over one multi-field
// submission.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/port"
)

type coordinator struct {
	fields []port.FieldProcessor
	logger *slog.Logger
}

// NewCoordinator declares the set of fields a submission may carry. Field
// names must be unique.
func NewCoordinator(logger *slog.Logger, fields ...port.FieldProcessor) (port.Coordinator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, ok := seen[f.Field()]; ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateField, f.Field())
		}
		seen[f.Field()] = struct{}{}
	}
	return &coordinator{fields: fields, logger: logger}, nil
}

// Process resolves every declared field. Fields are independent, so they run
// concurrently; the aggregate error reports the first required-field failure
// in declared order regardless of completion order.
func (c *coordinator) Process(ctx context.Context, sub *domain.Submission) domain.Result {
	results := make([]domain.FieldResult, len(c.fields))
	var wg sync.WaitGroup
	for i, f := range c.fields {
		wg.Add(1)
		go func(i int, f port.FieldProcessor) {
			defer wg.Done()
			results[i] = f.Process(ctx, sub)
		}(i, f)
	}
	wg.Wait()

	result := domain.Result{Fields: make(map[string][]domain.FileRecord), Succeeded: true}
	for _, fr := range results {
		if len(fr.Records) > 0 {
			result.Fields[fr.Field] = fr.Records
		}
		if !fr.Succeeded {
			result.Succeeded = false
			if result.Error == "" {
				result.Error = fmt.Sprintf("%s: %v", fr.Field, fr.Err)
			}
			c.logger.Info("field failed",
				slog.String("field", fr.Field),
				slog.String("error", fr.Err.Error()))
		}
	}
	return result
}
