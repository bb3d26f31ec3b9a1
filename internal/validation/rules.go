// Package validation provides custom validation rules for the application.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/leadlink/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// leadEmailRegex is the looser public form rule: something@something.something
	leadEmailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// MinPhoneDigits is the smallest number of digits accepted as a phone number.
const MinPhoneDigits = 10

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// LeadEmail accepts any address shaped like local@domain.tld, including non-ASCII ones.
var LeadEmail = validation.NewStringRuleWithError(
	func(s string) bool {
		return leadEmailRegex.MatchString(s)
	},
	validation.NewError("validation_lead_email_format", "must be a valid email address"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// HyphenFree rejects strings containing '-', the share token segment separator.
var HyphenFree = validation.NewStringRuleWithError(
	func(s string) bool {
		return !strings.Contains(s, "-")
	},
	validation.NewError("validation_hyphen_free", "must not contain '-'"),
)

// Phone requires at least MinPhoneDigits digits, ignoring any formatting characters.
var Phone = validation.NewStringRuleWithError(
	func(s string) bool {
		return len(Digits(s)) >= MinPhoneDigits
	},
	validation.NewError("validation_phone", "must contain at least 10 digits"),
)

// HexColor validates a #rrggbb color.
var HexColor = validation.NewStringRuleWithError(
	func(s string) bool {
		return hexColorRegex.MatchString(s)
	},
	validation.NewError("validation_hex_color", "must be a color in #rrggbb format"),
)

// HTTPURL validates an absolute http or https URL. Empty strings are left to Required.
var HTTPURL = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_url_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validation.NewError("validation_url", "must be a valid http or https URL")
	}
	return nil
})

// Digits returns only the ASCII digits 0-9 of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
