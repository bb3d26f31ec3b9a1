// Package mocks provides mock implementations for testing lead HTTP handlers.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
	"github.com/allisson/leadlink/internal/lead/usecase"
)

// MockLeadUseCase is a mock implementation of LeadUseCase.
type MockLeadUseCase struct {
	mock.Mock
}

// NewMockLeadUseCase creates a MockLeadUseCase that asserts its expectations on cleanup.
func NewMockLeadUseCase(t *testing.T) *MockLeadUseCase {
	m := &MockLeadUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Submit mocks the Submit method of LeadUseCase.
func (m *MockLeadUseCase) Submit(
	ctx context.Context,
	token string,
	preview bool,
	input usecase.SubmitLeadInput,
) (*leadDomain.Lead, error) {
	args := m.Called(ctx, token, preview, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*leadDomain.Lead), args.Error(1)
}

// ListByRealtor mocks the ListByRealtor method of LeadUseCase.
func (m *MockLeadUseCase) ListByRealtor(
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
