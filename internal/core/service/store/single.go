package store

import (
	"log/slog"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/port"
	"github.com/Ichinga-Samuel/fastfiles/internal/core/service/field"
)

// Single wraps one policy and one engine into a coordinator, for handlers
// that accept a single upload field.
func Single(policy domain.Policy, engine port.Engine, logger *slog.Logger) (port.Coordinator, error) {
	p, err := field.NewProcessor(policy, engine, logger)
	if err != nil {
		return nil, err
	}
	return NewCoordinator(logger, p)
}
