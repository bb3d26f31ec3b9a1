// Package mocks provides mock implementations for testing the lead use case.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	sharelinkDomain "github.com/allisson/leadlink/internal/sharelink/domain"
)

// MockLeadRepository is a mock implementation of LeadRepository.
type MockLeadRepository struct {
	mock.Mock
}

// NewMockLeadRepository creates a MockLeadRepository that asserts its expectations on cleanup.
func NewMockLeadRepository(t *testing.T) *MockLeadRepository {
	m := &MockLeadRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockLeadRepository) Create(ctx context.Context, lead *leadDomain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

// ExistsByEmail mocks the ExistsByEmail method.
func (m *MockLeadRepository) ExistsByEmail(ctx context.Context, realtorID, email string) (bool, error) {
	args := m.Called(ctx, realtorID, email)
	return args.Bool(0), args.Error(1)
}

// ListByRealtor mocks the ListByRealtor method.
func (m *MockLeadRepository) ListByRealtor(
	ctx context.Context,
	realtorID string,
	offset, limit int,
) ([]*leadDomain.Lead, error) {
	args := m.Called(ctx, realtorID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*leadDomain.Lead), args.Error(1)
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

// Create mocks the Create method.
func (m *MockOutboxEventRepository) Create(ctx context.Context, event *outboxDomain.OutboxEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockTokenResolver is a mock implementation of TokenResolver.
type MockTokenResolver struct {
	mock.Mock
}

// NewMockTokenResolver creates a MockTokenResolver that asserts its expectations on cleanup.
func NewMockTokenResolver(t *testing.T) *MockTokenResolver {
	m := &MockTokenResolver{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Resolve mocks the Resolve method.
func (m *MockTokenResolver) Resolve(
	ctx context.Context,
	token string,
	preview bool,
) (*sharelinkDomain.Resolution, error) {
	args := m.Called(ctx, token, preview)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharelinkDomain.Resolution), args.Error(1)
}

// MockRealtorReader is a mock implementation of RealtorReader.
type MockRealtorReader struct {
	mock.Mock
}

// NewMockRealtorReader creates a MockRealtorReader that asserts its expectations on cleanup.
func NewMockRealtorReader(t *testing.T) *MockRealtorReader {
	m := &MockRealtorReader{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get mocks the Get method.
func (m *MockRealtorReader) Get(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realtorDomain.Realtor), args.Error(1)
}
