package service

import (
	"sync"

	"github.com/allisson/checkin/internal/token/domain"
)

// SecurityMetricsTracker maintains the process-wide security telemetry
// aggregate. It is constructed explicitly and injected where needed; updates
// are serialized by a mutex so concurrent generations lose no increments.
type SecurityMetricsTracker struct {
	estimator *CollisionEstimator

	mu       sync.Mutex
	metrics  domain.SecurityMetrics
	degraded bool
}

// NewSecurityMetricsTracker creates a tracker in its initial state: zero
// counters, moderate security level.
func NewSecurityMetricsTracker(estimator *CollisionEstimator) *SecurityMetricsTracker {
	return &SecurityMetricsTracker{
		estimator: estimator,
		metrics:   initialMetrics(),
	}
}

// RecordGeneration updates the aggregate for a successful token generation:
// increments the generation counter, stores the token's entropy, recomputes the
// collision probability for the new population size, and reclassifies the
// security level. Once a degraded random source has been observed the reported
// level is capped at moderate: the aggregate must not claim "strong" while any
// token in the population came from the fallback generator.
func (t *SecurityMetricsTracker) RecordGeneration(token domain.GeneratedToken) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token.Source == domain.SourceDegraded {
		t.degraded = true
	}

	t.metrics.UniqueTokensGenerated++
	t.metrics.TokenEntropyBits = token.EntropyBits
	t.metrics.CollisionProbability = t.estimator.EstimateCollisionProbability(
		t.metrics.UniqueTokensGenerated,
		t.estimator.KeySpaceSize(),
	)

	level := t.estimator.ClassifySecurityLevel(
		t.metrics.TokenEntropyBits,
		t.metrics.CollisionProbability,
	)
	if t.degraded && level == domain.SecurityLevelStrong {
		level = domain.SecurityLevelModerate
	}
	t.metrics.SecurityLevel = level
}

// RecordValidationFailure increments the validation failure counter.
func (t *SecurityMetricsTracker) RecordValidationFailure() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics.ValidationFailures++
}

// Snapshot returns a read-only copy of the current metrics.
func (t *SecurityMetricsTracker) Snapshot() domain.SecurityMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.metrics
}

// Reset returns all counters to their initial zero/moderate state.
// Test and ops hook only.
func (t *SecurityMetricsTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.metrics = initialMetrics()
	t.degraded = false
}

func initialMetrics() domain.SecurityMetrics {
	return domain.SecurityMetrics{
		SecurityLevel: domain.SecurityLevelModerate,
	}
}
