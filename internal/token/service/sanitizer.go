package service

import (
	"strings"
	"unicode"
)

// TokenSanitizer normalizes externally supplied input into canonical token
// form: surrounding and internal whitespace removed, upper-cased.
type TokenSanitizer struct{}

// NewTokenSanitizer creates a new token sanitizer.
func NewTokenSanitizer() *TokenSanitizer {
	return &TokenSanitizer{}
}

// Sanitize strips all whitespace from raw and accepts the result only if it is
// exactly 12 alphanumeric characters, in which case the canonical upper-case
// token is returned with ok true. Any other shape is rejected outright: no
// partial normalization, no truncation. Sanitizing an already-canonical token
// is a no-op.
func (s *TokenSanitizer) Sanitize(raw string) (token string, ok bool) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	if !IsValidFormat(stripped) {
		return "", false
	}

	return strings.ToUpper(stripped), true
}
