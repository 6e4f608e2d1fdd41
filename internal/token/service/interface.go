// Package service provides the token security services: cryptographically
// secure random sourcing, alphabet encoding, entropy and collision analysis,
// validation, sanitization, hashing, and security telemetry tracking.
package service

import (
	"github.com/allisson/checkin/internal/token/domain"
)

// RandomSource abstracts a cryptographically secure random-byte generator with
// an explicit, clearly weaker fallback. Fill populates b entirely and reports
// which source produced the bytes, so a degraded source is observable.
type RandomSource interface {
	Fill(b []byte) (domain.Source, error)
}

// TokenHasher computes a one-way digest of a validated token for storage and
// comparison. The digest is tagged with the path that produced it.
type TokenHasher interface {
	Hash(token string) (domain.Digest, error)
}
