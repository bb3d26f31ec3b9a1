package domain

import (
	"github.com/allisson/leadlink/internal/errors"
)

var (
	// ErrInvalidRealtorID indicates a realtor id that cannot be the first token segment.
	ErrInvalidRealtorID = errors.Wrap(errors.ErrInvalidInput, "realtor id must be non-empty and must not contain '-'")

	// ErrTokenMissing indicates a public request without a token.
	ErrTokenMissing = errors.Wrap(errors.ErrInvalidInput, "no token provided, this link appears to be invalid")

	// ErrInvalidTokenFormat indicates a token that does not split into three non-empty segments.
	ErrInvalidTokenFormat = errors.Wrap(errors.ErrInvalidInput, "invalid token format, this link appears to be corrupted")

	// ErrShareTokenNotFound indicates no token record is stored for the realtor.
	ErrShareTokenNotFound = errors.Wrap(errors.ErrNotFound, "share token not found")

	// ErrShareTokenNotIssued indicates a well formed token that is not the realtor's current one.
	ErrShareTokenNotIssued = errors.Wrap(errors.ErrNotFound, "share token was not issued or has been replaced")

	// ErrShareTokenInactive indicates the realtor's current token is inactive or expired.
	ErrShareTokenInactive = errors.Wrap(errors.ErrForbidden, "share token is no longer active")
)
