// Package domain defines the realtor profile and the public form customization it owns.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/leadlink/internal/errors"
)

// IDPrefix starts every issued realtor id.
const IDPrefix = "rlt_"

// Default public form settings.
const (
	DefaultPrimaryColor = "#3b82f6"
	DefaultCustomTitle  = "Get Your Free Property Valuation"
)

// Realtor is an agent who owns a share link and receives leads.
type Realtor struct {
	// ID never contains '-' so it can lead a share token.
	ID            string
	Name          string
	Email         string
	Company       string
	Phone         string
	License       string
	PhotoURL      string
	Customization FormCustomization
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FormCustomization controls how the public lead capture form is branded.
type FormCustomization struct {
	WelcomeMessage  string `json:"welcome_message"`
	CustomTitle     string `json:"custom_title"`
	PrimaryColor    string `json:"primary_color"`
	CompanyLogoURL  string `json:"company_logo_url"`
	ShowPhoto       bool   `json:"show_photo"`
	ShowContactInfo bool   `json:"show_contact_info"`
}

// DefaultFormCustomization returns the settings a new realtor starts with.
func DefaultFormCustomization() FormCustomization {
	return FormCustomization{
		PrimaryColor:    DefaultPrimaryColor,
		CustomTitle:     DefaultCustomTitle,
		ShowPhoto:       true,
		ShowContactInfo: true,
	}
}

// NewID returns a fresh realtor id: IDPrefix followed by 32 hex digits of a UUIDv7.
func NewID() string {
	return IDPrefix + strings.ReplaceAll(uuid.Must(uuid.NewV7()).String(), "-", "")
}

// Domain-specific errors for realtor operations.
var (
	// ErrRealtorNotFound indicates no realtor has the requested id.
	ErrRealtorNotFound = errors.Wrap(errors.ErrNotFound, "realtor not found")

	// ErrRealtorAlreadyExists indicates the email is already registered.
	ErrRealtorAlreadyExists = errors.Wrap(errors.ErrConflict, "realtor already exists")
)
