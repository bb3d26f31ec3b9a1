package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	id := NewID()

	assert.True(t, strings.HasPrefix(id, IDPrefix))
	assert.Len(t, id, len(IDPrefix)+32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewID())
}

func TestDefaultFormCustomization(t *testing.T) {
	c := DefaultFormCustomization()

	assert.Equal(t, "#3b82f6", c.PrimaryColor)
	assert.Equal(t, "Get Your Free Property Valuation", c.CustomTitle)
	assert.True(t, c.ShowPhoto)
	assert.True(t, c.ShowContactInfo)
	assert.Empty(t, c.WelcomeMessage)
}
