package dto

import (
	"time"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// CustomizationResponse is the public form customization in API responses.
type CustomizationResponse struct {
	WelcomeMessage  string `json:"welcome_message"`
	CustomTitle     string `json:"custom_title"`
	PrimaryColor    string `json:"primary_color"`
	CompanyLogoURL  string `json:"company_logo_url,omitempty"`
	ShowPhoto       bool   `json:"show_photo"`
	ShowContactInfo bool   `json:"show_contact_info"`
}

// RealtorResponse represents a realtor in API responses.
type RealtorResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Company       string                `json:"company,omitempty"`
	Phone         string                `json:"phone,omitempty"`
	License       string                `json:"license,omitempty"`
	PhotoURL      string                `json:"photo_url,omitempty"`
	Customization CustomizationResponse `json:"customization"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// MapCustomizationToResponse converts form customization to its API shape.
func MapCustomizationToResponse(c realtorDomain.FormCustomization) CustomizationResponse {
	return CustomizationResponse{
		WelcomeMessage:  c.WelcomeMessage,
		CustomTitle:     c.CustomTitle,
		PrimaryColor:    c.PrimaryColor,
		CompanyLogoURL:  c.CompanyLogoURL,
		ShowPhoto:       c.ShowPhoto,
		ShowContactInfo: c.ShowContactInfo,
	}
}

// MapRealtorToResponse converts a domain realtor to an API response.
func MapRealtorToResponse(r *realtorDomain.Realtor) RealtorResponse {
	return RealtorResponse{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Company:       r.Company,
		Phone:         r.Phone,
		License:       r.License,
		PhotoURL:      r.PhotoURL,
		Customization: MapCustomizationToResponse(r.Customization),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
