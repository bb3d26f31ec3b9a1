// Package mocks provides mock implementations for testing share link HTTP handlers.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// MockShareLinkUseCase is a mock implementation of ShareLinkUseCase.
type MockShareLinkUseCase struct {
	mock.Mock
}

// NewMockShareLinkUseCase creates a MockShareLinkUseCase that asserts its expectations on cleanup.
func NewMockShareLinkUseCase(t *testing.T) *MockShareLinkUseCase {
	m := &MockShareLinkUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// GetOrCreate mocks the GetOrCreate method of ShareLinkUseCase.
func (m *MockShareLinkUseCase) GetOrCreate(ctx context.Context, realtorID string) (*domain.ShareLink, error) {
	args := m.Called(ctx, realtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareLink), args.Error(1)
}

// Regenerate mocks the Regenerate method of ShareLinkUseCase.
func (m *MockShareLinkUseCase) Regenerate(ctx context.Context, realtorID string) (*domain.ShareLink, error) {
	args := m.Called(ctx, realtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareLink), args.Error(1)
}

// Resolve mocks the Resolve method of ShareLinkUseCase.
func (m *MockShareLinkUseCase) Resolve(ctx context.Context, token string, preview bool) (*domain.Resolution, error) {
	args := m.Called(ctx, token, preview)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resolution), args.Error(1)
}

// ShareKit mocks the ShareKit method of ShareLinkUseCase.
func (m *MockShareLinkUseCase) ShareKit(ctx context.Context, realtorID string) (*domain.ShareKit, error) {
	args := m.Called(ctx, realtorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareKit), args.Error(1)
}
