// Package usecase implements public lead intake and the realtor's lead list.
package usecase

import (
	"context"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	sharelinkDomain "github.com/allisson/leadlink/internal/sharelink/domain"
)

// LeadRepository defines lead persistence operations.
type LeadRepository interface {
	Create(ctx context.Context, lead *leadDomain.Lead) error
	// ExistsByEmail matches the stored lowercase email of the realtor's leads.
	ExistsByEmail(ctx context.Context, realtorID, email string) (bool, error)
	// ListByRealtor returns leads newest first.
	ListByRealtor(ctx context.Context, realtorID string, offset, limit int) ([]*leadDomain.Lead, error)
}

// OutboxEventRepository stores events published after commit.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// TokenResolver turns a share token into the realtor it belongs to.
type TokenResolver interface {
	Resolve(ctx context.Context, token string, preview bool) (*sharelinkDomain.Resolution, error)
}

// RealtorReader looks up realtors by id.
type RealtorReader interface {
	Get(ctx context.Context, id string) (*realtorDomain.Realtor, error)
}

// SubmitLeadInput contains the public form fields.
type SubmitLeadInput struct {
	FullName        string
	Email           string
	Phone           string
	PropertyAddress string
	City            string
	PropertyType    string
	SellingTimeline string
	EstimatedValue  string
	Notes           string
}

// LeadUseCase defines lead business operations.
type LeadUseCase interface {
	// Submit validates the form, binds the lead to the token's realtor and records a
	// lead.captured event. Preview links are refused with leadDomain.ErrPreviewSubmission.
	Submit(ctx context.Context, token string, preview bool, input SubmitLeadInput) (*leadDomain.Lead, error)

	// ListByRealtor returns a page of the realtor's leads.
	ListByRealtor(ctx context.Context, realtorID string, offset, limit int) ([]*leadDomain.Lead, error)
}
