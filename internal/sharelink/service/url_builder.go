package service

import (
	"net/url"
)

// PublicFormPath is the front-end route that renders the lead capture form.
const PublicFormPath = "/public-lead-capture-form"

// BuildShareableURL returns baseURL + PublicFormPath + "?token=" + the query escaped token.
// baseURL is used verbatim, so it should carry no trailing slash. The token is not validated.
func BuildShareableURL(token, baseURL string) string {
	return baseURL + PublicFormPath + "?token=" + url.QueryEscape(token)
}

// BuildPreviewURL is BuildShareableURL with preview=true appended.
func BuildPreviewURL(token, baseURL string) string {
	return BuildShareableURL(token, baseURL) + "&preview=true"
}
