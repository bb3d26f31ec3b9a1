// Package mocks provides mock implementations for testing the share link use case.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// MockShareLinkRepository is a mock implementation of ShareLinkRepository.
type MockShareLinkRepository struct {
	mock.Mock
}

// NewMockShareLinkRepository creates a MockShareLinkRepository that asserts its expectations on cleanup.
func NewMockShareLinkRepository(t *testing.T) *MockShareLinkRepository {
	m := &MockShareLinkRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Get mocks the Get method.
func (m *MockShareLinkRepository) Get(ctx context.Context, realtorID string) (*domain.TokenRecord, error) {
	args := m.Called(ctx, realtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenRecord), args.Error(1)
}

// Save mocks the Save method.
func (m *MockShareLinkRepository) Save(ctx context.Context, record *domain.TokenRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
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
