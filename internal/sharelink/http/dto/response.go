package dto

import (
	"time"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	realtorDTO "github.com/allisson/leadlink/internal/realtor/http/dto"
	"github.com/allisson/leadlink/internal/sharelink/domain"
)

// ShareLinkResponse represents a realtor's share link in API responses.
type ShareLinkResponse struct {
	Token       string     `json:"token"`
	URL         string     `json:"url"`
	PreviewURL  string     `json:"preview_url"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	RealtorID   string     `json:"realtor_id"`
	RealtorName string     `json:"realtor_name"`
}

// SocialContentResponse holds one post per platform.
type SocialContentResponse struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
}

// ShareIntentsResponse holds the prefilled share dialog URLs.
type ShareIntentsResponse struct {
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

// EmailResponse is a ready-to-send email.
type EmailResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NativeShareResponse is the payload for the Web Share API.
type NativeShareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareKitResponse is the share kit in API responses.
type ShareKitResponse struct {
	Link         ShareLinkResponse     `json:"link"`
	Social       SocialContentResponse `json:"social"`
	ShareIntents ShareIntentsResponse  `json:"share_intents"`
	Email        EmailResponse         `json:"email"`
	SMSBody      string                `json:"sms_body"`
	NativeShare  NativeShareResponse   `json:"native_share"`
}

// PublicRealtorResponse is the part of a realtor profile shown on the public form.
// Photo and contact details are left out when the customization hides them.
type PublicRealtorResponse struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	License  string `json:"license,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// PublicFormResponse is what the public form renders for a resolved token.
type PublicFormResponse struct {
	RealtorID     string                           `json:"realtor_id"`
	Realtor       PublicRealtorResponse            `json:"realtor"`
	Customization realtorDTO.CustomizationResponse `json:"customization"`
	Preview       bool                             `json:"preview"`
}

// MapShareLinkToResponse converts a share link to its API shape.
func MapShareLinkToResponse(link *domain.ShareLink) ShareLinkResponse {
	return ShareLinkResponse{
		Token:       link.Record.Token,
		URL:         link.URL,
		PreviewURL:  link.PreviewURL,
		Active:      link.Record.Active,
		CreatedAt:   link.Record.CreatedAt,
		ExpiresAt:   link.Record.ExpiresAt,
		RealtorID:   link.Record.Metadata.RealtorID,
		RealtorName: link.Record.Metadata.RealtorName,
	}
}

// MapShareKitToResponse converts a share kit to its API shape.
func MapShareKitToResponse(kit *domain.ShareKit) ShareKitResponse {
	return ShareKitResponse{
		Link: MapShareLinkToResponse(kit.Link),
		Social: SocialContentResponse{
			Facebook:  kit.Social.Facebook,
			Instagram: kit.Social.Instagram,
			LinkedIn:  kit.Social.LinkedIn,
			Twitter:   kit.Social.Twitter,
		},
		ShareIntents: ShareIntentsResponse{
			Facebook: kit.Intents.Facebook,
			LinkedIn: kit.Intents.LinkedIn,
			Twitter:  kit.Intents.Twitter,
		},
		Email: EmailResponse{
			Subject: kit.EmailSubject,
			Body:    kit.EmailBody,
		},
		SMSBody: kit.SMSBody,
		NativeShare: NativeShareResponse{
			Title: kit.NativeTitle,
			Text:  kit.NativeText,
			URL:   kit.Link.URL,
		},
	}
}

// MapResolutionToResponse converts a resolved token to the public form payload.
func MapResolutionToResponse(resolution *domain.Resolution) PublicFormResponse {
	return PublicFormResponse{
		RealtorID:     resolution.Realtor.ID,
		Realtor:       mapPublicRealtor(resolution.Realtor),
		Customization: realtorDTO.MapCustomizationToResponse(resolution.Realtor.Customization),
		Preview:       resolution.Preview,
	}
}

func mapPublicRealtor(realtor *realtorDomain.Realtor) PublicRealtorResponse {
	resp := PublicRealtorResponse{
		Name:    realtor.Name,
		Company: realtor.Company,
		License: realtor.License,
	}
	if realtor.Customization.ShowPhoto {
		resp.PhotoURL = realtor.PhotoURL
	}
	if realtor.Customization.ShowContactInfo {
		resp.Email = realtor.Email
		resp.Phone = realtor.Phone
	}
	return resp
}
