package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/leadlink/internal/database/mocks"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	realtorMocks "github.com/allisson/leadlink/internal/realtor/usecase/mocks"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectOperation(m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", mock.Anything, "realtor", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "realtor", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestRealtorUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Get", func(t *testing.T) {
		repo := realtorMocks.NewMockRealtorRepository(t)
		repo.On("GetByID", ctx, "rlt_1").Return(&realtorDomain.Realtor{ID: "rlt_1"}, nil).Once()
		m := &mockBusinessMetrics{}
		expectOperation(m, "get", "success")

		uc := NewRealtorUseCaseWithMetrics(
			NewRealtorUseCase(databaseMocks.NewMockTxManager(t), repo, realtorMocks.NewMockOutboxEventRepository(t)),
			m,
		)
		realtor, err := uc.Get(ctx, "rlt_1")

		require.NoError(t, err)
		assert.Equal(t, "rlt_1", realtor.ID)
		m.AssertExpectations(t)
	})

	t.Run("Error_Get", func(t *testing.T) {
		repo := realtorMocks.NewMockRealtorRepository(t)
		repo.On("GetByID", ctx, "rlt_2").Return(nil, realtorDomain.ErrRealtorNotFound).Once()
		m := &mockBusinessMetrics{}
		expectOperation(m, "get", "error")

		uc := NewRealtorUseCaseWithMetrics(
			NewRealtorUseCase(databaseMocks.NewMockTxManager(t), repo, realtorMocks.NewMockOutboxEventRepository(t)),
			m,
		)
		_, err := uc.Get(ctx, "rlt_2")

		assert.ErrorIs(t, err, realtorDomain.ErrRealtorNotFound)
		m.AssertExpectations(t)
	})

	t.Run("Error_CreateValidation", func(t *testing.T) {
		m := &mockBusinessMetrics{}
		expectOperation(m, "create", "error")

		uc := NewRealtorUseCaseWithMetrics(
			NewRealtorUseCase(
				databaseMocks.NewMockTxManager(t),
				realtorMocks.NewMockRealtorRepository(t),
				realtorMocks.NewMockOutboxEventRepository(t),
			),
			m,
		)
		_, err := uc.Create(ctx, CreateRealtorInput{})

		assert.Error(t, err)
		m.AssertExpectations(t)
	})

	t.Run("Error_UpdateCustomizationValidation", func(t *testing.T) {
		m := &mockBusinessMetrics{}
		expectOperation(m, "update_customization", "error")

		uc := NewRealtorUseCaseWithMetrics(
			NewRealtorUseCase(
				databaseMocks.NewMockTxManager(t),
				realtorMocks.NewMockRealtorRepository(t),
				realtorMocks.NewMockOutboxEventRepository(t),
			),
			m,
		)
		_, err := uc.UpdateCustomization(ctx, "rlt_1", UpdateCustomizationInput{})

		assert.Error(t, err)
		m.AssertExpectations(t)
	})
}
