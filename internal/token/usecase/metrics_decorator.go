package usecase

import (
	"context"
	"time"

	"github.com/allisson/checkin/internal/metrics"
	"github.com/allisson/checkin/internal/token/domain"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(
	useCase TokenUseCase,
	m metrics.BusinessMetrics,
) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for token generation operations.
func (t *tokenUseCaseWithMetrics) Generate(ctx context.Context) (domain.GeneratedToken, error) {
	start := time.Now()
	token, err := t.next.Generate(ctx)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "generate", status)
	t.metrics.RecordDuration(ctx, "token", "generate", time.Since(start), status)

	return token, err
}

// Validate records metrics for token validation operations. A rejected token
// is a successful validation call; only the result is negative.
func (t *tokenUseCaseWithMetrics) Validate(ctx context.Context, candidate string) domain.ValidationResult {
	start := time.Now()
	result := t.next.Validate(ctx, candidate)

	status := "accepted"
	if !result.IsValid {
		status = "rejected"
	}

	t.metrics.RecordOperation(ctx, "token", "validate", status)
	t.metrics.RecordDuration(ctx, "token", "validate", time.Since(start), status)

	return result
}

// IsValidFormat passes through; the pure structural check is not instrumented.
func (t *tokenUseCaseWithMetrics) IsValidFormat(token string) bool {
	return t.next.IsValidFormat(token)
}

// Sanitize passes through; the pure normalization is not instrumented.
func (t *tokenUseCaseWithMetrics) Sanitize(raw string) (string, bool) {
	return t.next.Sanitize(raw)
}

// Hash records metrics for token hashing operations.
func (t *tokenUseCaseWithMetrics) Hash(ctx context.Context, token string) (domain.Digest, error) {
	start := time.Now()
	digest, err := t.next.Hash(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	t.metrics.RecordOperation(ctx, "token", "hash", status)
	t.metrics.RecordDuration(ctx, "token", "hash", time.Since(start), status)

	return digest, err
}

// SecurityMetrics passes through to the underlying use case.
func (t *tokenUseCaseWithMetrics) SecurityMetrics() domain.SecurityMetrics {
	return t.next.SecurityMetrics()
}

// ResetMetrics passes through to the underlying use case.
func (t *tokenUseCaseWithMetrics) ResetMetrics() {
	t.next.ResetMetrics()
}
