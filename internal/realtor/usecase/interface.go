// Package usecase implements realtor registration, lookup and form customization.
package usecase

import (
	"context"

	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// RealtorRepository defines realtor persistence operations.
type RealtorRepository interface {
	Create(ctx context.Context, realtor *realtorDomain.Realtor) error
	// GetByID returns realtorDomain.ErrRealtorNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*realtorDomain.Realtor, error)
	UpdateCustomization(ctx context.Context, id string, customization realtorDomain.FormCustomization) error
}

// OutboxEventRepository stores events published after commit.
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}

// CreateRealtorInput contains the fields accepted on registration.
type CreateRealtorInput struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	License  string
	PhotoURL string
}

// UpdateCustomizationInput replaces the public form customization.
type UpdateCustomizationInput struct {
	WelcomeMessage  string
	CustomTitle     string
	PrimaryColor    string
	CompanyLogoURL  string
	ShowPhoto       bool
	ShowContactInfo bool
}

// RealtorUseCase defines realtor business operations.
type RealtorUseCase interface {
	// Create registers a realtor with default customization and records a realtor.registered event.
	Create(ctx context.Context, input CreateRealtorInput) (*realtorDomain.Realtor, error)

	// Get returns the realtor or realtorDomain.ErrRealtorNotFound.
	Get(ctx context.Context, id string) (*realtorDomain.Realtor, error)

	// UpdateCustomization validates and stores new form settings and returns the updated realtor.
	UpdateCustomization(
		ctx context.Context,
		id string,
		input UpdateCustomizationInput,
	) (*realtorDomain.Realtor, error)
}
