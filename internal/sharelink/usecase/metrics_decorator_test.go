package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/leadlink/internal/sharelink/domain"
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
	m.On("RecordOperation", mock.Anything, "sharelink", operation, status).Once()
	m.On("RecordDuration", mock.Anything, "sharelink", operation, mock.AnythingOfType("time.Duration"), status).Once()
}

func TestShareLinkUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_Resolve", func(t *testing.T) {
		inner, deps := setupShareLinkUseCase(t, false)
		deps.realtors.On("Get", ctx, testRealtorID).Return(testRealtor, nil).Once()
		m := &mockBusinessMetrics{}
		expectOperation(m, "resolve", "success")

		_, err := NewShareLinkUseCaseWithMetrics(inner, m).Resolve(ctx, testToken, false)

		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("Error_ResolveMissingToken", func(t *testing.T) {
		inner, _ := setupShareLinkUseCase(t, false)
		m := &mockBusinessMetrics{}
		expectOperation(m, "resolve", "error")

		_, err := NewShareLinkUseCaseWithMetrics(inner, m).Resolve(ctx, "", false)

		assert.ErrorIs(t, err, domain.ErrTokenMissing)
		m.AssertExpectations(t)
	})

	t.Run("Success_Regenerate", func(t *testing.T) {
		inner, deps := setupShareLinkUseCase(t, false)
		deps.realtors.On("Get", ctx, testRealtorID).Return(testRealtor, nil).Once()
		deps.repo.On("Save", ctx, mock.Anything).Return(nil).Once()
		m := &mockBusinessMetrics{}
		expectOperation(m, "regenerate", "success")

		_, err := NewShareLinkUseCaseWithMetrics(inner, m).Regenerate(ctx, testRealtorID)

		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("Success_GetOrCreateAndShareKit", func(t *testing.T) {
		inner, deps := setupShareLinkUseCase(t, false)
		deps.realtors.On("Get", ctx, testRealtorID).Return(testRealtor, nil).Twice()
		deps.txManager.On("WithTx", ctx, mock.Anything).Return(nil).Twice()
		deps.repo.On("Get", ctx, testRealtorID).Return(storedRecord(), nil).Twice()
		m := &mockBusinessMetrics{}
		expectOperation(m, "get_or_create", "success")
		expectOperation(m, "share_kit", "success")

		uc := NewShareLinkUseCaseWithMetrics(inner, m)
		_, err := uc.GetOrCreate(ctx, testRealtorID)
		assert.NoError(t, err)
		_, err = uc.ShareKit(ctx, testRealtorID)
		assert.NoError(t, err)

		m.AssertExpectations(t)
	})
}
