package usecase

import (
	"context"
	"time"

	"github.com/allisson/leadlink/internal/metrics"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

const metricsDomain = "sharelink"

type shareLinkUseCaseWithMetrics struct {
	next    ShareLinkUseCase
	metrics metrics.BusinessMetrics
}

// NewShareLinkUseCaseWithMetrics wraps a ShareLinkUseCase with metrics recording.
func NewShareLinkUseCaseWithMetrics(useCase ShareLinkUseCase, m metrics.BusinessMetrics) ShareLinkUseCase {
	return &shareLinkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *shareLinkUseCaseWithMetrics) GetOrCreate(
	ctx context.Context,
	realtorID string,
) (link *domain.ShareLink, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, s.metrics, metricsDomain, "get_or_create", start, err) }(time.Now())
	return s.next.GetOrCreate(ctx, realtorID)
}

func (s *shareLinkUseCaseWithMetrics) Regenerate(
	ctx context.Context,
	realtorID string,
) (link *domain.ShareLink, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, s.metrics, metricsDomain, "regenerate", start, err) }(time.Now())
	return s.next.Regenerate(ctx, realtorID)
}

func (s *shareLinkUseCaseWithMetrics) Resolve(
	ctx context.Context,
	token string,
	preview bool,
) (resolution *domain.Resolution, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, s.metrics, metricsDomain, "resolve", start, err) }(time.Now())
	return s.next.Resolve(ctx, token, preview)
}

func (s *shareLinkUseCaseWithMetrics) ShareKit(
	ctx context.Context,
	realtorID string,
) (kit *domain.ShareKit, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, s.metrics, metricsDomain, "share_kit", start, err) }(time.Now())
	return s.next.ShareKit(ctx, realtorID)
}
