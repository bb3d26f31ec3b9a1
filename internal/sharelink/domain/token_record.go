// Package domain holds the share token record and the values built from it.
package domain

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for persisted record timestamps:
// UTC with millisecond precision, e.g. 2025-01-23T10:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Metadata describes who a share token belongs to.
type Metadata struct {
	RealtorID   string
	RealtorName string
	// CreatedBy is always the owning realtor id; there is no delegated issuance.
	CreatedBy string
}

// TokenRecord is the value stored per realtor for their current share link.
// A realtor has at most one record. Regenerating replaces it.
type TokenRecord struct {
	Token     string
	CreatedAt time.Time
	// ExpiresAt is nil for tokens that never expire. Issued tokens never carry one.
	ExpiresAt *time.Time
	Active    bool
	Metadata  Metadata
}

// IsExpired reports whether the record has an expiry at or before now.
func (r *TokenRecord) IsExpired(now time.Time) bool {
	if r.ExpiresAt == nil {
		return false
	}
	return !now.UTC().Before(r.ExpiresAt.UTC())
}

// IsUsable reports whether the record is active and not expired at now.
func (r *TokenRecord) IsUsable(now time.Time) bool {
	return r.Active && !r.IsExpired(now)
}

type metadataJSON struct {
	RealtorID   string `json:"realtorId"`
	RealtorName string `json:"realtorName"`
	CreatedBy   string `json:"createdBy"`
}

type tokenRecordJSON struct {
	Token     string       `json:"token"`
	CreatedAt string       `json:"createdAt"`
	ExpiresAt *string      `json:"expiresAt"`
	Active    bool         `json:"active"`
	Metadata  metadataJSON `json:"metadata"`
}

// MarshalJSON encodes the record in its persisted shape. expiresAt is always present,
// as null when the record never expires.
func (r TokenRecord) MarshalJSON() ([]byte, error) {
	doc := tokenRecordJSON{
		Token:     r.Token,
		CreatedAt: r.CreatedAt.UTC().Format(TimestampLayout),
		Active:    r.Active,
		Metadata: metadataJSON{
			RealtorID:   r.Metadata.RealtorID,
			RealtorName: r.Metadata.RealtorName,
			CreatedBy:   r.Metadata.CreatedBy,
		},
	}
	if r.ExpiresAt != nil {
		expiresAt := r.ExpiresAt.UTC().Format(TimestampLayout)
		doc.ExpiresAt = &expiresAt
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes a persisted record. Timestamps are accepted in any RFC 3339 form.
func (r *TokenRecord) UnmarshalJSON(data []byte) error {
	var doc tokenRecordJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	createdAt, err := time.Parse(time.RFC3339Nano, doc.CreatedAt)
	if err != nil {
		return err
	}

	var expiresAt *time.Time
	if doc.ExpiresAt != nil {
		t, err := time.Parse(time.RFC3339Nano, *doc.ExpiresAt)
		if err != nil {
			return err
		}
		expiresAt = &t
	}

	*r = TokenRecord{
		Token:     doc.Token,
		CreatedAt: createdAt.UTC(),
		ExpiresAt: expiresAt,
		Active:    doc.Active,
		Metadata: Metadata{
			RealtorID:   doc.Metadata.RealtorID,
			RealtorName: doc.Metadata.RealtorName,
			CreatedBy:   doc.Metadata.CreatedBy,
		},
	}
	return nil
}
