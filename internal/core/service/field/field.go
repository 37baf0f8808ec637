// Package field evaluates one upload policy against one storage engine for a
// single named form field.
package field

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/port"
)

type processor struct {
	policy domain.Policy
	engine port.Engine
	logger *slog.Logger
}

// NewProcessor binds a policy to an engine. The policy's cardinality bounds
// are normalized to the 1/1 defaults.
func NewProcessor(policy domain.Policy, engine port.Engine, logger *slog.Logger) (port.FieldProcessor, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, domain.ErrMissingEngine
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &processor{policy: policy.Normalized(), engine: engine, logger: logger}, nil
}

func (p *processor) Field() string {
	return p.policy.FieldName
}

// Process filters the field's candidates, prechecks cardinality, then uploads
// every accepted candidate concurrently and waits for all outcomes. Records
// keep submission order; one file's failure never cancels its siblings.
func (p *processor) Process(ctx context.Context, sub *domain.Submission) domain.FieldResult {
	candidates := sub.Candidates(p.policy.FieldName)
	if len(candidates) == 0 {
		if p.policy.Required {
			return domain.FieldResult{Field: p.policy.FieldName, Err: domain.ErrFieldRequired}
		}
		return domain.FieldResult{Field: p.policy.FieldName, Succeeded: true}
	}

	accepted := p.filter(sub, candidates)
	if len(accepted) > p.policy.MaxCount {
		accepted = accepted[:p.policy.MaxCount]
	}

	// Cardinality is checked before any upload starts, so a short field
	// never produces partial engine calls.
	if p.policy.Required && len(accepted) < p.policy.MinCount {
		return domain.FieldResult{
			Field: p.policy.FieldName,
			Err:   fmt.Errorf("%w: accepted %d of %d", domain.ErrTooFewFiles, len(accepted), p.policy.MinCount),
		}
	}
	if len(accepted) == 0 {
		return domain.FieldResult{Field: p.policy.FieldName, Succeeded: true}
	}

	records := make([]domain.FileRecord, len(accepted))
	var wg sync.WaitGroup
	for i, c := range accepted {
		wg.Add(1)
		go func(i int, c *domain.Candidate) {
			defer wg.Done()
			records[i] = p.upload(ctx, sub, c)
		}(i, c)
	}
	wg.Wait()

	result := domain.FieldResult{Field: p.policy.FieldName, Records: records, Succeeded: true}
	if p.policy.Required {
		for _, r := range records {
			if !r.Succeeded {
				result.Succeeded = false
				result.Err = fmt.Errorf("%w: %s", domain.ErrUploadFailed, r.Error)
				break
			}
		}
	}
	return result
}

// filter runs the policy's predicates in declared order, short-circuiting on
// the first failure. Rejected candidates are silently excluded; they surface
// only through the accepted count.
func (p *processor) filter(sub *domain.Submission, candidates []*domain.Candidate) []*domain.Candidate {
	if len(p.policy.Filters) == 0 {
		return candidates
	}
	accepted := make([]*domain.Candidate, 0, len(candidates))
next:
	for _, c := range candidates {
		for _, f := range p.policy.Filters {
			if !f(sub, c) {
				p.logger.Debug("candidate rejected by filter",
					slog.String("field", p.policy.FieldName),
					slog.String("filename", c.Filename))
				continue next
			}
		}
		accepted = append(accepted, c)
	}
	return accepted
}

// upload resolves the stored name and destination for one candidate and hands
// it to the engine. A rename or destination error is a per-file failure, not
// a field abort.
func (p *processor) upload(ctx context.Context, sub *domain.Submission, c *domain.Candidate) domain.FileRecord {
	name := c.Filename
	if p.policy.Rename != nil {
		renamed, err := p.policy.Rename(sub, c)
		if err != nil {
			return domain.FailedRecord(c.Filename, c.ContentType, err)
		}
		name = renamed
	}

	destination := p.policy.Destination
	if p.policy.DestinationFunc != nil {
		computed, err := p.policy.DestinationFunc(sub, c)
		if err != nil {
			return domain.FailedRecord(name, c.ContentType, err)
		}
		destination = computed
	}

	return p.engine.Put(ctx, &domain.StoreRequest{
		Name:        name,
		Destination: destination,
		ContentType: c.ContentType,
		Size:        c.Size,
		Body:        c.Source,
		Options:     p.policy.EngineOptions,
	})
}
