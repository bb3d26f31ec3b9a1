// Package service implements the share token scheme: generation, format checks,
// realtor id extraction, URL building and sharing content.
//
// Everything except TokenGenerator.Generate is a pure function of its arguments.
package service

import (
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// TokenGenerator creates new token records.
type TokenGenerator interface {
	// Generate builds a fresh active record for the realtor. It returns
	// domain.ErrInvalidRealtorID for an empty id or one containing '-', and otherwise
	// fails only if the random source does. Nothing is persisted.
	Generate(realtorID, realtorName string) (*domain.TokenRecord, error)
}
