package domain

import (
	"errors"
)

// SecurityLevel classifies the overall security of the token population.
type SecurityLevel string

const (
	SecurityLevelWeak     SecurityLevel = "weak"
	SecurityLevelModerate SecurityLevel = "moderate"
	SecurityLevelStrong   SecurityLevel = "strong"
)

// Validate checks if the security level is valid.
func (s SecurityLevel) Validate() error {
	switch s {
	case SecurityLevelWeak, SecurityLevelModerate, SecurityLevelStrong:
		return nil
	default:
		return errors.New("invalid security level")
	}
}

// String returns the string representation of the security level.
func (s SecurityLevel) String() string {
	return string(s)
}

// CollisionRisk buckets the likelihood of independently generated tokens colliding,
// derived from a token's empirical entropy.
type CollisionRisk string

const (
	CollisionRiskLow    CollisionRisk = "low"
	CollisionRiskMedium CollisionRisk = "medium"
	CollisionRiskHigh   CollisionRisk = "high"
)

// String returns the string representation of the collision risk.
func (c CollisionRisk) String() string {
	return string(c)
}

// Source tags which random source produced a token, so degraded randomness
// is observable instead of silently reported as secure.
type Source string

const (
	// SourceSecure indicates bytes came from the operating system CSPRNG.
	SourceSecure Source = "secure"

	// SourceDegraded indicates the non-cryptographic fallback generator was used.
	SourceDegraded Source = "degraded"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// HashPath tags which digest algorithm produced a hash.
type HashPath string

const (
	// HashPathSecure indicates the SHA-256 cryptographic digest was used.
	HashPathSecure HashPath = "secure"

	// HashPathDegraded indicates the non-cryptographic fallback hash was used.
	// Acceptable only in non-production environments.
	HashPathDegraded HashPath = "degraded"
)

// String returns the string representation of the hash path.
func (h HashPath) String() string {
	return string(h)
}

// GeneratedToken is the result of a token generation, carrying the token value,
// the random source that produced it, and its measured entropy. Flagged is set
// when the token failed post-generation validation but was returned anyway.
type GeneratedToken struct {
	Value       string
	Source      Source
	EntropyBits float64
	Flagged     bool
}

// ValidationResult is the outcome of validating a candidate token. It is
// produced fresh per validation call and never mutated afterward. Reason is
// empty when IsValid is true. EntropyBits and CollisionRisk are populated only
// once the candidate passes the structural checks.
type ValidationResult struct {
	IsValid       bool
	Reason        string
	EntropyBits   float64
	CollisionRisk CollisionRisk
}

// Digest is the result of hashing a token: a fixed-length lower-case hex string
// tagged with the path that produced it.
type Digest struct {
	Value string
	Path  HashPath
}

// SecurityMetrics is the process-wide security telemetry aggregate.
// It is never persisted to durable storage.
type SecurityMetrics struct {
	// TokenEntropyBits is the entropy of the most recently generated token.
	TokenEntropyBits float64
	// CollisionProbability is the estimated probability of any collision within
	// the tokens generated so far, in [0,1].
	CollisionProbability float64
	// UniqueTokensGenerated counts successful generations since the last reset.
	UniqueTokensGenerated uint64
	// ValidationFailures counts failed validations since the last reset.
	ValidationFailures uint64
	// SecurityLevel is the coarse classification derived from entropy and
	// collision probability.
	SecurityLevel SecurityLevel
}
