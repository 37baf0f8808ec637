// Package engine provides the shared test double for storage engines.
package engine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ichinga-Samuel/fastfiles/internal/core/domain"
)

type MockEngine struct {
	mock.Mock
}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Put(ctx context.Context, req *domain.StoreRequest) domain.FileRecord {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.FileRecord)
}
