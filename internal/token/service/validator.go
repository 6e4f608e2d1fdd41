package service

import (
	"github.com/allisson/checkin/internal/token/domain"
)

// TokenValidator is the structural and entropy-based acceptance gate for any
// token, generated or externally supplied.
type TokenValidator struct {
	analyzer *EntropyAnalyzer
}

// NewTokenValidator creates a new token validator using the given analyzer.
func NewTokenValidator(analyzer *EntropyAnalyzer) *TokenValidator {
	return &TokenValidator{analyzer: analyzer}
}

// Validate checks a candidate token and returns a fresh ValidationResult.
// Checks run in order and the first failure wins: empty, length, character
// set, entropy threshold. An entropy rejection still carries the computed
// entropy and collision risk. Validate never returns an error value.
func (v *TokenValidator) Validate(candidate string) domain.ValidationResult {
	if candidate == "" {
		return domain.ValidationResult{
			IsValid: false,
			Reason:  "token must be a non-empty string",
		}
	}

	if len(candidate) != domain.TokenLength {
		return domain.ValidationResult{
			IsValid: false,
			Reason:  "token must be exactly 12 characters",
		}
	}

	if !isAlphanumericString(candidate) {
		return domain.ValidationResult{
			IsValid: false,
			Reason:  "token contains invalid characters",
		}
	}

	entropy := v.analyzer.CalculateEntropy(candidate)
	risk := v.analyzer.AssessCollisionRisk(entropy)

	if entropy < domain.MinEntropyBits {
		return domain.ValidationResult{
			IsValid:       false,
			Reason:        "token entropy too low",
			EntropyBits:   entropy,
			CollisionRisk: risk,
		}
	}

	return domain.ValidationResult{
		IsValid:       true,
		EntropyBits:   entropy,
		CollisionRisk: risk,
	}
}

// IsValidFormat reports whether token is exactly 12 alphanumeric characters.
// Pure structural check, case-independent, no entropy evaluation.
func IsValidFormat(token string) bool {
	return len(token) == domain.TokenLength && isAlphanumericString(token)
}

// isAlphanumericString checks if every character is in [A-Za-z0-9].
func isAlphanumericString(s string) bool {
	for _, c := range s {
		if !isAlphanumeric(c) {
			return false
		}
	}
	return true
}

// isAlphanumeric checks if a character is alphanumeric [A-Za-z0-9].
func isAlphanumeric(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
