package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customeros/trustwatch/internal/errors"
)

func TestWebsite_StripsSchemeAndPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		domain   string
		isSecure bool
	}{
		{"https scheme", "https://example.com", "example.com", true},
		{"http scheme", "http://example.com", "example.com", false},
		{"no scheme", "example.com", "example.com", false},
		{"path dropped", "https://shop.example.co.uk/checkout?x=1", "shop.example.co.uk", true},
		{"uppercase host", "HTTPS://Example.COM/About", "example.com", true},
		{"surrounding whitespace", "  http://example.com  ", "example.com", false},
		{"subdomain kept", "https://mail.google.com", "mail.google.com", true},
		{"www kept", "https://www.example.com", "www.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Website(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.domain, result.Domain)
			assert.Equal(t, tt.isSecure, result.IsSecure)
		})
	}
}

func TestWebsite_RetainsRawInput(t *testing.T) {
	result, err := Website("https://example.com/landing")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/landing", result.Raw)
}

func TestWebsite_EmptyInput(t *testing.T) {
	tests := []string{"", "   ", "https://"}

	for _, input := range tests {
		_, err := Website(input)

		assert.ErrorIs(t, err, errors.ErrWebsiteRequired)
	}
}

func TestWebsite_Idempotent(t *testing.T) {
	first, err := Website("https://Example.com/pricing")
	require.NoError(t, err)

	second, err := Website(first.Domain)
	require.NoError(t, err)

	assert.Equal(t, first.Domain, second.Domain)
}

func TestEmail_ExtractsDomain(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		domain string
	}{
		{"plain address", "user@bigcorp.com", "bigcorp.com"},
		{"uppercase domain", "user@BigCorp.COM", "bigcorp.com"},
		{"surrounding whitespace", "  user@bigcorp.com  ", "bigcorp.com"},
		{"first at wins", "weird@middle@host.com", "middle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Email(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.domain, result.Domain)
		})
	}
}

func TestEmail_MissingInput(t *testing.T) {
	_, err := Email("")

	assert.ErrorIs(t, err, errors.ErrMissingEmail)
}

func TestEmail_InvalidFormat(t *testing.T) {
	tests := []string{"no-at-sign", "user@"}

	for _, input := range tests {
		_, err := Email(input)

		assert.ErrorIs(t, err, errors.ErrInvalidEmailFormat)
	}
}
