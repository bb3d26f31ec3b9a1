package dto

import (
	"time"

	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
)

// LeadResponse represents a lead in API responses.
type LeadResponse struct {
	ID              string    `json:"id"`
	RealtorID       string    `json:"realtor_id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	PropertyAddress string    `json:"property_address"`
	City            string    `json:"city"`
	PropertyType    string    `json:"property_type"`
	SellingTimeline string    `json:"selling_timeline"`
	EstimatedValue  string    `json:"estimated_value,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Source          string    `json:"source"`
	IsDuplicate     bool      `json:"is_duplicate"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// SubmitLeadResponse is returned to the prospect after a submission. It echoes only
// what the success screen shows.
type SubmitLeadResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// ListLeadsResponse is a page of leads.
type ListLeadsResponse struct {
	Data   []LeadResponse `json:"data"`
	Offset int            `json:"offset"`
	Limit  int            `json:"limit"`
}

// MapLeadToResponse converts a lead to its API shape.
func MapLeadToResponse(lead *leadDomain.Lead) LeadResponse {
	return LeadResponse{
		ID:              lead.ID.String(),
		RealtorID:       lead.RealtorID,
		FullName:        lead.FullName,
		Email:           lead.Email,
		Phone:           lead.Phone,
		PropertyAddress: lead.PropertyAddress,
		City:            lead.City,
		PropertyType:    string(lead.PropertyType),
		SellingTimeline: string(lead.SellingTimeline),
		EstimatedValue:  lead.EstimatedValue,
		Notes:           lead.Notes,
		Source:          lead.Source,
		IsDuplicate:     lead.IsDuplicate,
		SubmittedAt:     lead.SubmittedAt,
	}
}

// MapSubmitLeadToResponse converts an accepted lead to the prospect facing response.
func MapSubmitLeadToResponse(lead *leadDomain.Lead) SubmitLeadResponse {
	return SubmitLeadResponse{
		ID:          lead.ID.String(),
		FullName:    lead.FullName,
		Email:       lead.Email,
		SubmittedAt: lead.SubmittedAt,
	}
}

// MapLeadsToListResponse converts a page of leads.
func MapLeadsToListResponse(leads []*leadDomain.Lead, offset, limit int) ListLeadsResponse {
	data := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		data = append(data, MapLeadToResponse(lead))
	}
	return ListLeadsResponse{Data: data, Offset: offset, Limit: limit}
}
