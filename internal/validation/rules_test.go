package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/leadlink/internal/errors"
)

func TestStringRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      validation.Rule
		value     string
		shouldErr bool
	}{
		{name: "email valid", rule: Email, value: "sarah@example.com"},
		{name: "email missing domain", rule: Email, value: "sarah@", shouldErr: true},
		{name: "email missing tld", rule: Email, value: "sarah@example", shouldErr: true},
		{name: "lead email non-ascii local part", rule: LeadEmail, value: "josé@exemplo.com.br"},
		{name: "lead email shortest", rule: LeadEmail, value: "a@b.c"},
		{name: "lead email single label host", rule: LeadEmail, value: "user@localhost.x"},
		{name: "lead email missing dot", rule: LeadEmail, value: "user@localhost", shouldErr: true},
		{name: "lead email inner space", rule: LeadEmail, value: "jo se@example.com", shouldErr: true},
		{name: "lead email missing at", rule: LeadEmail, value: "example.com", shouldErr: true},
		{name: "no whitespace valid", rule: NoWhitespace, value: "Sarah"},
		{name: "no whitespace leading", rule: NoWhitespace, value: " Sarah", shouldErr: true},
		{name: "not blank valid", rule: NotBlank, value: "x"},
		{name: "not blank spaces", rule: NotBlank, value: "   ", shouldErr: true},
		{name: "hyphen free valid", rule: HyphenFree, value: "realtor_42"},
		{name: "hyphen free invalid", rule: HyphenFree, value: "realtor-42", shouldErr: true},
		{name: "phone formatted", rule: Phone, value: "(555) 123-4567"},
		{name: "phone plain", rule: Phone, value: "5551234567"},
		{name: "phone too short", rule: Phone, value: "555-1234", shouldErr: true},
		{name: "phone arabic-indic digits", rule: Phone, value: "٥٥٥١٢٣٤٥٦٧", shouldErr: true},
		{name: "hex color valid", rule: HexColor, value: "#3b82f6"},
		{name: "hex color short", rule: HexColor, value: "#fff", shouldErr: true},
		{name: "hex color no hash", rule: HexColor, value: "3b82f6", shouldErr: true},
		{name: "url https", rule: HTTPURL, value: "https://cdn.example.com/photo.png"},
		{name: "url empty", rule: HTTPURL, value: ""},
		{name: "url ftp", rule: HTTPURL, value: "ftp://example.com/file", shouldErr: true},
		{name: "url relative", rule: HTTPURL, value: "/photo.png", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, tt.rule)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmptyStringsSkipStringRules(t *testing.T) {
	for _, rule := range []validation.Rule{Email, LeadEmail, Phone, HexColor, HyphenFree} {
		assert.NoError(t, validation.Validate("", rule))
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "5551234567", Digits("(555) 123-4567"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "", Digits("٥٥٥١٢٣٤٥٦٧"), "only ASCII digits count")
	assert.Equal(t, "12", Digits("1٢2"))
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(validation.NewError("code", "name: cannot be blank"))
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "name: cannot be blank")
}
