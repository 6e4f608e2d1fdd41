package service

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
	"log/slog"

	"github.com/allisson/checkin/internal/token/domain"
)

// sha256TokenHasher hashes tokens with SHA-256, the primary path.
type sha256TokenHasher struct{}

// NewSHA256TokenHasher creates the cryptographic token hasher. Digests are
// SHA-256 over the UTF-8 bytes of the token, hex-encoded lower-case, 64
// characters, tagged HashPathSecure.
func NewSHA256TokenHasher() TokenHasher {
	return &sha256TokenHasher{}
}

// Hash computes the SHA-256 digest of a structurally valid token.
// Returns ErrInvalidTokenFormat if the token is not exactly 12 alphanumeric
// characters; entropy is not re-checked here.
func (h *sha256TokenHasher) Hash(token string) (domain.Digest, error) {
	if !IsValidFormat(token) {
		return domain.Digest{}, domain.ErrInvalidTokenFormat
	}

	sum := sha256.Sum256([]byte(token))
	return domain.Digest{
		Value: hex.EncodeToString(sum[:]),
		Path:  domain.HashPathSecure,
	}, nil
}

// fnvTokenHasher is the non-cryptographic fallback hasher. Its digests are
// trivially reversible by search and must never gate anything in production.
type fnvTokenHasher struct{}

// NewFallbackTokenHasher creates the degraded FNV-1a token hasher for
// environments without a cryptographic digest primitive. Every digest it
// produces is tagged HashPathDegraded. The warning is logged at construction
// so the degraded condition is observable even if callers drop the tag.
func NewFallbackTokenHasher(logger *slog.Logger) TokenHasher {
	logger.Warn("using non-cryptographic fallback token hasher, digests are insecure")
	return &fnvTokenHasher{}
}

// Hash computes the FNV-1a 128-bit digest of a structurally valid token.
// Same format precondition as the cryptographic path.
func (h *fnvTokenHasher) Hash(token string) (domain.Digest, error) {
	if !IsValidFormat(token) {
		return domain.Digest{}, domain.ErrInvalidTokenFormat
	}

	hasher := fnv.New128a()
	// fnv's Write never returns an error
	_, _ = hasher.Write([]byte(token))

	return domain.Digest{
		Value: hex.EncodeToString(hasher.Sum(nil)),
		Path:  domain.HashPathDegraded,
	}, nil
}
