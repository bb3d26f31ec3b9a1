package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// Separator joins the token segments.
const Separator = "-"

// minSegments is the number of segments a well formed token has at least. The uuid
// segment carries its own hyphens, so issued tokens split into seven.
const minSegments = 3

type tokenGenerator struct {
	now     func() time.Time
	newUUID func() (uuid.UUID, error)
}

// NewTokenGenerator returns a generator using the wall clock and random (version 4) UUIDs.
func NewTokenGenerator() TokenGenerator {
	return &tokenGenerator{now: time.Now, newUUID: uuid.NewRandom}
}

// NewTokenGeneratorWithSources returns a generator with injected clock and UUID source.
func NewTokenGeneratorWithSources(now func() time.Time, newUUID func() (uuid.UUID, error)) TokenGenerator {
	return &tokenGenerator{now: now, newUUID: newUUID}
}

func (g *tokenGenerator) Generate(realtorID, realtorName string) (*domain.TokenRecord, error) {
	if realtorID == "" || strings.Contains(realtorID, Separator) {
		return nil, domain.ErrInvalidRealtorID
	}

	id, err := g.newUUID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token id: %w", err)
	}

	createdAt := g.now().UTC().Truncate(time.Millisecond)

	return &domain.TokenRecord{
		Token:     ComposeToken(realtorID, createdAt, id),
		CreatedAt: createdAt,
		Active:    true,
		Metadata: domain.Metadata{
			RealtorID:   realtorID,
			RealtorName: realtorName,
			CreatedBy:   realtorID,
		},
	}, nil
}

// ComposeToken joins the three segments of a share token.
func ComposeToken(realtorID string, createdAt time.Time, id uuid.UUID) string {
	return realtorID + Separator + strconv.FormatInt(createdAt.UnixMilli(), 10) + Separator + id.String()
}

// IsValidTokenFormat reports whether token splits on '-' into at least three
// segments with none of them empty. Only the shape is checked.
func IsValidTokenFormat(token string) bool {
	if token == "" {
		return false
	}
	parts := strings.Split(token, Separator)
	if len(parts) < minSegments {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
	}
	return true
}

// ExtractRealtorID returns the first segment of a well formed token.
// ok is false when IsValidTokenFormat rejects the token.
func ExtractRealtorID(token string) (realtorID string, ok bool) {
	if !IsValidTokenFormat(token) {
		return "", false
	}
	realtorID, _, _ = strings.Cut(token, Separator)
	return realtorID, true
}
