package usecase

import (
	"context"
	"time"

	"github.com/allisson/leadlink/internal/metrics"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

const metricsDomain = "realtor"

type realtorUseCaseWithMetrics struct {
	next    RealtorUseCase
	metrics metrics.BusinessMetrics
}

// NewRealtorUseCaseWithMetrics wraps a RealtorUseCase with metrics recording.
func NewRealtorUseCaseWithMetrics(useCase RealtorUseCase, m metrics.BusinessMetrics) RealtorUseCase {
	return &realtorUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *realtorUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateRealtorInput,
) (realtor *realtorDomain.Realtor, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, r.metrics, metricsDomain, "create", start, err) }(time.Now())
	return r.next.Create(ctx, input)
}

func (r *realtorUseCaseWithMetrics) Get(ctx context.Context, id string) (realtor *realtorDomain.Realtor, err error) {
	defer func(start time.Time) { metrics.Observe(ctx, r.metrics, metricsDomain, "get", start, err) }(time.Now())
	return r.next.Get(ctx, id)
}

func (r *realtorUseCaseWithMetrics) UpdateCustomization(
	ctx context.Context,
	id string,
	input UpdateCustomizationInput,
) (realtor *realtorDomain.Realtor, err error) {
	defer func(start time.Time) {
		metrics.Observe(ctx, r.metrics, metricsDomain, "update_customization", start, err)
	}(time.Now())
	return r.next.UpdateCustomization(ctx, id, input)
}
