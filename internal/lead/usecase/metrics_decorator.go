package usecase

import (
	"context"
	"time"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
	"github.com/allisson/leadlink/internal/metrics"
)

type leadUseCaseWithMetrics struct {
	next    LeadUseCase
	metrics metrics.BusinessMetrics
}

// NewLeadUseCaseWithMetrics wraps a LeadUseCase with metrics recording.
func NewLeadUseCaseWithMetrics(useCase LeadUseCase, m metrics.BusinessMetrics) LeadUseCase {
	return &leadUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (l *leadUseCaseWithMetrics) Submit(
	ctx context.Context,
	token string,
	preview bool,
	input SubmitLeadInput,
) (lead *leadDomain.Lead, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, l.metrics, "lead", "submit", start, err) }(time.Now())
	return l.next.Submit(ctx, token, preview, input)
}

func (l *leadUseCaseWithMetrics) ListByRealtor(
	ctx context.Context,
	realtorID string,
	offset, limit int,
) (leads []*leadDomain.Lead, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, l.metrics, "lead", "list", start, err) }(time.Now())
	return l.next.ListByRealtor(ctx, realtorID, offset, limit)
}
