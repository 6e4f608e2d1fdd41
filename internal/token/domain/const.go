// Package domain defines the core check-in token security domain model:
// token format constants, validation results, and the security metrics aggregate.
package domain

// Token format constants forming part of the external contract.
const (
	// TokenLength is the exact number of symbols in a check-in token.
	TokenLength = 12

	// GenerationAlphabet is the restricted alphabet used at generation time.
	// Visually ambiguous characters (0/O, I) are excluded so tokens stay
	// human-typeable; 24 uppercase letters plus the digits 1-9.
	GenerationAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"

	// GenerationAlphabetSize is the size of GenerationAlphabet.
	GenerationAlphabetSize = 33

	// ValidationAlphabetSize is the size of the alphabet accepted from external
	// input: the full alphanumeric set [A-Za-z0-9].
	ValidationAlphabetSize = 62
)

// Entropy and collision thresholds (bits / probability).
const (
	// MinEntropyBits is the minimum acceptable empirical entropy for a token.
	MinEntropyBits = 40.0

	// LowRiskEntropyBits is the entropy at or above which collision risk is low.
	LowRiskEntropyBits = 80.0

	// MediumRiskEntropyBits is the entropy at or above which collision risk is medium.
	MediumRiskEntropyBits = 60.0

	// StrongMaxCollisionProbability is the collision probability below which,
	// combined with LowRiskEntropyBits, the security level is strong.
	StrongMaxCollisionProbability = 1e-12

	// ModerateMaxCollisionProbability is the collision probability below which,
	// combined with MediumRiskEntropyBits, the security level is moderate.
	ModerateMaxCollisionProbability = 1e-9
)
