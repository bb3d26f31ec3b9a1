// Package dto provides the lead API request and response bodies.
package dto

import (
	"github.com/allisson/leadlink/internal/lead/usecase"
)

// SubmitLeadRequest is the body of POST /v1/public/leads. Field rules are enforced by the
// use case so the public form gets one set of messages.
type SubmitLeadRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	PropertyAddress string `json:"property_address"`
	City            string `json:"city"`
	PropertyType    string `json:"property_type"`
	SellingTimeline string `json:"selling_timeline"`
	EstimatedValue  string `json:"estimated_value"`
	Notes           string `json:"notes"`
}

// ToInput converts the request to the use case input.
func (r *SubmitLeadRequest) ToInput() usecase.SubmitLeadInput {
	return usecase.SubmitLeadInput{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		PropertyAddress: r.PropertyAddress,
		City:            r.City,
		PropertyType:    r.PropertyType,
		SellingTimeline: r.SellingTimeline,
		EstimatedValue:  r.EstimatedValue,
		Notes:           r.Notes,
	}
}
