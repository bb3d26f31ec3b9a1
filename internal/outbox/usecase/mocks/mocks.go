// Package mocks provides mock implementations for testing the outbox worker.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/leadlink/internal/outbox/domain"
)

// MockOutboxEventRepository is a mock implementation of OutboxEventRepository.
type MockOutboxEventRepository struct {
	mock.Mock
}

// NewMockOutboxEventRepository creates a MockOutboxEventRepository that asserts its expectations on cleanup.
func NewMockOutboxEventRepository(t *testing.T) *MockOutboxEventRepository {
	m := &MockOutboxEventRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// GetPendingEvents mocks the GetPendingEvents method.
func (m *MockOutboxEventRepository) GetPendingEvents(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.OutboxEvent), args.Error(1)
}

// Update mocks the Update method.
func (m *MockOutboxEventRepository) Update(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockEventProcessor is a mock implementation of EventProcessor.
type MockEventProcessor struct {
	mock.Mock
}

// NewMockEventProcessor creates a MockEventProcessor that asserts its expectations on cleanup.
func NewMockEventProcessor(t *testing.T) *MockEventProcessor {
	m := &MockEventProcessor{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Process mocks the Process method.
func (m *MockEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
