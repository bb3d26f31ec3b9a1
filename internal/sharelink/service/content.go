package service

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/allisson/leadlink/internal/sharelink/domain"
)

const (
	facebookShareEndpoint = "https://www.facebook.com/sharer/sharer.php?u="
	linkedInShareEndpoint = "https://www.linkedin.com/sharing/share-offsite/?url="
	twitterShareEndpoint  = "https://twitter.com/intent/tweet?text="
)

func baseMessage(realtorName string) string {
	return fmt.Sprintf(
		"Looking to sell your property? I'm %s, and I'd love to help you get the best value for your home. "+
			"Fill out my quick form to get started:",
		realtorName,
	)
}

// RenderSocialContent returns a post per platform, each containing realtorName and
// shareableURL. realtorName is not escaped; callers rendering HTML must escape it.
func RenderSocialContent(realtorName, shareableURL string) domain.SocialContent {
	base := baseMessage(realtorName)

	return domain.SocialContent{
		Facebook: fmt.Sprintf("%s\n\n%s\n\n#RealEstate #HomeSelling #%s",
			base, shareableURL, stripWhitespace(realtorName)),
		Instagram: fmt.Sprintf("%s\n\n%s\n\n#realestate #homeselling #property #realtor",
			base, shareableURL),
		LinkedIn: fmt.Sprintf("%s\n\n%s\n\nLet's discuss your property goals and create a strategic plan for your sale.",
			base, shareableURL),
		Twitter: fmt.Sprintf("%s\n\n%s\n\n#RealEstate #HomeSelling",
			base, shareableURL),
	}
}

// RenderShareKit builds the full sharing toolset for a link: social posts, share
// dialog URLs, an email, an SMS and the native share sheet texts.
func RenderShareKit(realtorName string, link *domain.ShareLink) *domain.ShareKit {
	social := RenderSocialContent(realtorName, link.URL)

	return &domain.ShareKit{
		Link:   link,
		Social: social,
		Intents: domain.ShareIntents{
			Facebook: facebookShareEndpoint + url.QueryEscape(link.URL),
			LinkedIn: linkedInShareEndpoint + url.QueryEscape(link.URL),
			Twitter:  twitterShareEndpoint + url.QueryEscape(social.Twitter),
		},
		EmailSubject: "Property Selling Consultation with " + realtorName,
		EmailBody:    emailBody(realtorName, link.URL),
		SMSBody: fmt.Sprintf(
			"Hi! I'm %s, a local real estate agent. If you're thinking about selling your property, "+
				"I'd love to help you get the best value. Fill out my quick form here: %s",
			realtorName, link.URL,
		),
		NativeTitle: "Property Consultation with " + realtorName,
		NativeText:  "Looking to sell your property? Get a free consultation with " + realtorName,
	}
}

func emailBody(realtorName, shareableURL string) string {
	var b strings.Builder
	b.WriteString("Hi there,\n\n")
	fmt.Fprintf(&b, "I hope this email finds you well. I'm %s, and I specialize in helping homeowners "+
		"in our area get the best value for their properties.\n\n", realtorName)
	b.WriteString("If you're considering selling your home, I'd love to provide you with a free, " +
		"no-obligation consultation. You can get started by filling out this quick form:\n\n")
	b.WriteString(shareableURL)
	b.WriteString("\n\nI look forward to helping you with your real estate goals!\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(realtorName)
	return b.String()
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
