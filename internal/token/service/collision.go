package service

import (
	"math"

	"github.com/allisson/checkin/internal/token/domain"
)

// CollisionEstimator estimates the probability of token collisions across the
// issued population and classifies the overall security level.
type CollisionEstimator struct{}

// NewCollisionEstimator creates a new collision estimator.
func NewCollisionEstimator() *CollisionEstimator {
	return &CollisionEstimator{}
}

// KeySpaceSize returns the number of distinct possible tokens under the
// generation alphabet and fixed length (33^12).
func (e *CollisionEstimator) KeySpaceSize() float64 {
	return math.Pow(float64(domain.GenerationAlphabetSize), float64(domain.TokenLength))
}

// EstimateCollisionProbability approximates the probability of any collision
// among issuedCount independently generated tokens using the birthday paradox
// approximation P = n^2 / (2N). Returns 0 when issuedCount <= 1 and clamps the
// result to [0,1].
func (e *CollisionEstimator) EstimateCollisionProbability(issuedCount uint64, keySpaceSize float64) float64 {
	if issuedCount <= 1 || keySpaceSize <= 0 {
		return 0
	}

	n := float64(issuedCount)
	p := (n * n) / (2 * keySpaceSize)
	return math.Min(p, 1)
}

// ClassifySecurityLevel combines entropy and collision probability into the
// coarse weak/moderate/strong classification.
func (e *CollisionEstimator) ClassifySecurityLevel(
	entropyBits float64,
	collisionProbability float64,
) domain.SecurityLevel {
	switch {
	case entropyBits >= domain.LowRiskEntropyBits &&
		collisionProbability < domain.StrongMaxCollisionProbability:
		return domain.SecurityLevelStrong
	case entropyBits >= domain.MediumRiskEntropyBits &&
		collisionProbability < domain.ModerateMaxCollisionProbability:
		return domain.SecurityLevelModerate
	default:
		return domain.SecurityLevelWeak
	}
}
