// Package dto provides the realtor API request and response bodies.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/leadlink/internal/realtor/usecase"
	customValidation "github.com/allisson/leadlink/internal/validation"
)

// CreateRealtorRequest is the body of POST /v1/realtors.
type CreateRealtorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	License  string `json:"license"`
	PhotoURL string `json:"photo_url"`
}

// Validate checks the shape of the request. Length and format limits live in the use case.
func (r *CreateRealtorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, validation.Required, customValidation.Email),
	)
}

// ToInput converts the request to the use case input.
func (r *CreateRealtorRequest) ToInput() usecase.CreateRealtorInput {
	return usecase.CreateRealtorInput{
		Name:     r.Name,
		Email:    r.Email,
		Company:  r.Company,
		Phone:    r.Phone,
		License:  r.License,
		PhotoURL: r.PhotoURL,
	}
}

// UpdateCustomizationRequest is the body of PUT /v1/realtors/:id/customization.
type UpdateCustomizationRequest struct {
	WelcomeMessage  string `json:"welcome_message"`
	CustomTitle     string `json:"custom_title"`
	PrimaryColor    string `json:"primary_color"`
	CompanyLogoURL  string `json:"company_logo_url"`
	ShowPhoto       *bool  `json:"show_photo"`
	ShowContactInfo *bool  `json:"show_contact_info"`
}

// Validate requires the fields the form cannot render without.
func (r *UpdateCustomizationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomTitle, validation.Required, customValidation.NotBlank),
		validation.Field(&r.PrimaryColor, validation.Required, customValidation.HexColor),
		validation.Field(&r.ShowPhoto, validation.NotNil),
		validation.Field(&r.ShowContactInfo, validation.NotNil),
	)
}

// ToInput converts the request to the use case input. Call after Validate.
func (r *UpdateCustomizationRequest) ToInput() usecase.UpdateCustomizationInput {
	return usecase.UpdateCustomizationInput{
		WelcomeMessage:  r.WelcomeMessage,
		CustomTitle:     r.CustomTitle,
		PrimaryColor:    r.PrimaryColor,
		CompanyLogoURL:  r.CompanyLogoURL,
		ShowPhoto:       *r.ShowPhoto,
		ShowContactInfo: *r.ShowContactInfo,
	}
}
