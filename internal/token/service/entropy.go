package service

import (
	"math"

	"github.com/allisson/checkin/internal/token/domain"
)

// EntropyAnalyzer computes empirical Shannon entropy of candidate tokens and
// classifies their collision risk.
type EntropyAnalyzer struct{}

// NewEntropyAnalyzer creates a new entropy analyzer.
func NewEntropyAnalyzer() *EntropyAnalyzer {
	return &EntropyAnalyzer{}
}

// CalculateEntropy returns the token's total information content in bits:
// per-character Shannon entropy H = -sum(p*log2(p)) over the distinct symbols
// observed, scaled by the token length.
//
// This is an empirical, per-token estimate, not the entropy of the generation
// process. A token with repeated characters reports lower entropy even when it
// was drawn from a uniform source.
func (a *EntropyAnalyzer) CalculateEntropy(token string) float64 {
	if len(token) == 0 {
		return 0
	}

	freq := make(map[rune]int)
	total := 0
	for _, c := range token {
		freq[c]++
		total++
	}

	var entropy float64
	for _, count := range freq {
		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}

	return entropy * float64(total)
}

// AssessCollisionRisk buckets a token's entropy into a qualitative collision risk.
func (a *EntropyAnalyzer) AssessCollisionRisk(entropyBits float64) domain.CollisionRisk {
	switch {
	case entropyBits >= domain.LowRiskEntropyBits:
		return domain.CollisionRiskLow
	case entropyBits >= domain.MediumRiskEntropyBits:
		return domain.CollisionRiskMedium
	default:
		return domain.CollisionRiskHigh
	}
}
