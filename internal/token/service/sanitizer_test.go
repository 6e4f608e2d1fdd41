package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenSanitizer_Sanitize(t *testing.T) {
	sanitizer := NewTokenSanitizer()

	tests := []struct {
		name     string
		raw      string
		expected string
		ok       bool
	}{
		{
			name:     "Canonical_Passthrough",
			raw:      "ABCDEFGHJKLM",
			expected: "ABCDEFGHJKLM",
			ok:       true,
		},
		{
			name:     "Lowercase_Uppercased",
			raw:      "abcdefghjklm",
			expected: "ABCDEFGHJKLM",
			ok:       true,
		},
		{
			name:     "Surrounding_Whitespace",
			raw:      "  ABCDEFGHJKLM  ",
			expected: "ABCDEFGHJKLM",
			ok:       true,
		},
		{
			name:     "Internal_Whitespace",
			raw:      " abc def 123 456 ",
			expected: "ABCDEF123456",
			ok:       true,
		},
		{
			name:     "Tabs_And_Newlines",
			raw:      "\tabcd\nefgh\r jklm ",
			expected: "ABCDEFGHJKLM",
			ok:       true,
		},
		{
			name: "Reject_TooFewAfterStripping",
			raw:  "  ab cd12 ef3 4  ",
		},
		{
			name: "Reject_TooLongAfterStripping",
			raw:  "abcdefghjklmn",
		},
		{
			name: "Reject_NonAlphanumeric",
			raw:  "abcdefghjkl-",
		},
		{
			name: "Reject_Empty",
			raw:  "",
		},
		{
			name: "Reject_OnlyWhitespace",
			raw:  "   \t\n  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := sanitizer.Sanitize(tt.raw)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, token)
				return
			}
			assert.Empty(t, token)
		})
	}
}

func TestTokenSanitizer_Sanitize_Idempotent(t *testing.T) {
	sanitizer := NewTokenSanitizer()

	once, ok := sanitizer.Sanitize("  abcDEF123 456  ")
	assert.True(t, ok)

	twice, ok := sanitizer.Sanitize(once)
	assert.True(t, ok)
	assert.Equal(t, once, twice)
}
