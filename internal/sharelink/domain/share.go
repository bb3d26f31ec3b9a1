package domain

import (
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
)

// ShareLink is a token record together with the URLs built from it.
type ShareLink struct {
	Record     *TokenRecord
	URL        string
	PreviewURL string
}

// SocialContent holds one ready-to-post message per platform.
type SocialContent struct {
	Facebook  string
	Instagram string
	LinkedIn  string
	Twitter   string
}

// ShareIntents are the platform URLs that open a prefilled share dialog.
type ShareIntents struct {
	Facebook string
	LinkedIn string
	Twitter  string
}

// ShareKit is everything the sharing tools page offers for one link.
type ShareKit struct {
	Link         *ShareLink
	Social       SocialContent
	Intents      ShareIntents
	EmailSubject string
	EmailBody    string
	SMSBody      string
	NativeTitle  string
	NativeText   string
}

// Resolution is what a public form needs after a token has been accepted.
type Resolution struct {
	Token   string
	Realtor *realtorDomain.Realtor
	// Preview is true when the link was opened in preview mode; submissions must be refused.
	Preview bool
}
