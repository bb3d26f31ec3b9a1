// Package usecase manages a realtor's share link and resolves tokens for the public form.
package usecase

import (
	"context"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// ShareLinkRepository is the token record store, keyed by realtor id.
type ShareLinkRepository interface {
	// Get returns domain.ErrShareTokenNotFound when the realtor has no record.
	Get(ctx context.Context, realtorID string) (*domain.TokenRecord, error)
	// Save stores the record under its metadata realtor id, replacing any existing one.
	Save(ctx context.Context, record *domain.TokenRecord) error
}

// RealtorReader looks up the realtor a token points at.
type RealtorReader interface {
	// Get returns realtorDomain.ErrRealtorNotFound for unknown ids.
	Get(ctx context.Context, id string) (*realtorDomain.Realtor, error)
}

// Config holds share link settings.
type Config struct {
	// BaseURL is the public front-end origin, without a trailing slash.
	BaseURL string
	// StrictResolve requires a token to be the one currently stored for its realtor.
	StrictResolve bool
}

// ShareLinkUseCase defines share link operations.
type ShareLinkUseCase interface {
	// GetOrCreate returns the realtor's current link, issuing one on first use.
	GetOrCreate(ctx context.Context, realtorID string) (*domain.ShareLink, error)

	// Regenerate issues a new token and replaces the stored record. Old links stop
	// resolving only in strict mode.
	Regenerate(ctx context.Context, realtorID string) (*domain.ShareLink, error)

	// Resolve accepts a token from a public form request and returns the realtor behind it.
	Resolve(ctx context.Context, token string, preview bool) (*domain.Resolution, error)

	// ShareKit returns the link together with ready-made posts and messages.
	ShareKit(ctx context.Context, realtorID string) (*domain.ShareKit, error)
}
