// Package usecase defines interfaces and implementations for token security use cases.
// Provides token generation, validation, sanitization, hashing, and security telemetry.
package usecase

import (
	"context"

	"github.com/allisson/checkin/internal/token/domain"
)

// TokenUseCase defines the token security operations exposed to transports.
type TokenUseCase interface {
	// Generate produces a new check-in token. It never fails under normal
	// operation: degraded randomness and low-entropy outcomes are tagged on
	// the result rather than returned as errors.
	Generate(ctx context.Context) (domain.GeneratedToken, error)

	// Validate runs the full structural and entropy acceptance gate on a
	// candidate token. It always returns a result, never an error.
	Validate(ctx context.Context, candidate string) domain.ValidationResult

	// IsValidFormat reports whether token is exactly 12 alphanumeric characters.
	IsValidFormat(token string) bool

	// Sanitize normalizes externally supplied input into canonical token form.
	Sanitize(raw string) (token string, ok bool)

	// Hash computes the one-way digest of a structurally valid token.
	Hash(ctx context.Context, token string) (domain.Digest, error)

	// SecurityMetrics returns a read-only snapshot of the security telemetry.
	SecurityMetrics() domain.SecurityMetrics

	// ResetMetrics returns the security telemetry to its initial state.
	// Test and ops hook only.
	ResetMetrics()
}
