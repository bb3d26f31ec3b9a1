// Package mocks provides mock implementations of the realtor use case dependencies.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// MockRealtorRepository is a mock implementation of RealtorRepository.
type MockRealtorRepository struct {
	mock.Mock
}

// NewMockRealtorRepository creates a MockRealtorRepository that asserts its expectations on cleanup.
func NewMockRealtorRepository(t *testing.T) *MockRealtorRepository {
	m := &MockRealtorRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method of RealtorRepository.
func (m *MockRealtorRepository) Create(ctx context.Context, realtor *realtorDomain.Realtor) error {
	args := m.Called(ctx, realtor)
	return args.Error(0)
}

// GetByID mocks the GetByID method of RealtorRepository.
func (m *MockRealtorRepository) GetByID(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realtorDomain.Realtor), args.Error(1)
}

// UpdateCustomization mocks the UpdateCustomization method of RealtorRepository.
func (m *MockRealtorRepository) UpdateCustomization(
	ctx context.Context,
	id string,
	customization realtorDomain.FormCustomization,
) error {
	args := m.Called(ctx, id, customization)
	return args.Error(0)
}

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

// Create mocks the Create method of OutboxEventRepository.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
