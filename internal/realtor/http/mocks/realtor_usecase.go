// Package mocks provides mock implementations for testing realtor HTTP handlers.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	"github.com/allisson/leadlink/internal/realtor/usecase"
)

// MockRealtorUseCase is a mock implementation of RealtorUseCase.
type MockRealtorUseCase struct {
	mock.Mock
}

// NewMockRealtorUseCase creates a MockRealtorUseCase that asserts its expectations on cleanup.
func NewMockRealtorUseCase(t *testing.T) *MockRealtorUseCase {
	m := &MockRealtorUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method of RealtorUseCase.
func (m *MockRealtorUseCase) Create(
	ctx context.Context,
	input usecase.CreateRealtorInput,
) (*realtorDomain.Realtor, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realtorDomain.Realtor), args.Error(1)
}

// Get mocks the Get method of RealtorUseCase.
func (m *MockRealtorUseCase) Get(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realtorDomain.Realtor), args.Error(1)
}

// UpdateCustomization mocks the UpdateCustomization method of RealtorUseCase.
func (m *MockRealtorUseCase) UpdateCustomization(
	ctx context.Context,
	id string,
	input usecase.UpdateCustomizationInput,
) (*realtorDomain.Realtor, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*realtorDomain.Realtor), args.Error(1)
}
