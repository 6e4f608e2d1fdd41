// Package usecase implements the token security business logic.
//
// Coordinates random sourcing, alphabet encoding, entropy analysis, validation,
// hashing, and the process-wide security telemetry aggregate.
package usecase

import (
	"context"
	"log/slog"

	apperrors "github.com/allisson/checkin/internal/errors"
	"github.com/allisson/checkin/internal/token/domain"
	"github.com/allisson/checkin/internal/token/service"
)

// tokenUseCase implements TokenUseCase.
type tokenUseCase struct {
	source    service.RandomSource
	encoder   *service.TokenEncoder
	analyzer  *service.EntropyAnalyzer
	validator *service.TokenValidator
	sanitizer *service.TokenSanitizer
	hasher    service.TokenHasher
	tracker   *service.SecurityMetricsTracker
	logger    *slog.Logger
}

// NewTokenUseCase creates a token use case with all its dependencies.
func NewTokenUseCase(
	source service.RandomSource,
	encoder *service.TokenEncoder,
	analyzer *service.EntropyAnalyzer,
	validator *service.TokenValidator,
	sanitizer *service.TokenSanitizer,
	hasher service.TokenHasher,
	tracker *service.SecurityMetricsTracker,
	logger *slog.Logger,
) TokenUseCase {
	return &tokenUseCase{
		source:    source,
		encoder:   encoder,
		analyzer:  analyzer,
		validator: validator,
		sanitizer: sanitizer,
		hasher:    hasher,
		tracker:   tracker,
		logger:    logger,
	}
}

// Generate produces a new check-in token and records it in the security
// telemetry. A token that fails post-generation validation is logged and
// returned flagged rather than regenerated: termination wins over strict
// entropy enforcement here, and callers needing a hard guarantee re-validate
// and apply their own retry policy.
func (u *tokenUseCase) Generate(ctx context.Context) (domain.GeneratedToken, error) {
	raw := make([]byte, domain.TokenLength)
	source, err := u.source.Fill(raw)
	if err != nil {
		return domain.GeneratedToken{}, apperrors.Wrap(domain.ErrGenerationFailure, err.Error())
	}

	value, err := u.encoder.Encode(raw)
	if err != nil {
		return domain.GeneratedToken{}, apperrors.Wrap(err, "failed to encode token")
	}

	result := u.validator.Validate(value)

	generated := domain.GeneratedToken{
		Value:       value,
		Source:      source,
		EntropyBits: result.EntropyBits,
		Flagged:     !result.IsValid,
	}

	// A flagged token is returned, not regenerated, and does not count as a
	// validation failure: only externally supplied candidates feed that counter.
	if !result.IsValid {
		u.logger.Warn("generated token failed validation",
			slog.String("reason", result.Reason),
			slog.Float64("entropy_bits", result.EntropyBits),
			slog.String("source", source.String()),
		)
	}

	u.tracker.RecordGeneration(generated)

	return generated, nil
}

// Validate runs the acceptance gate on a candidate token and counts failures
// in the security telemetry.
func (u *tokenUseCase) Validate(ctx context.Context, candidate string) domain.ValidationResult {
	result := u.validator.Validate(candidate)
	if !result.IsValid {
		u.tracker.RecordValidationFailure()
	}
	return result
}

// IsValidFormat reports whether token is exactly 12 alphanumeric characters.
func (u *tokenUseCase) IsValidFormat(token string) bool {
	return service.IsValidFormat(token)
}

// Sanitize normalizes externally supplied input into canonical token form.
func (u *tokenUseCase) Sanitize(raw string) (string, bool) {
	return u.sanitizer.Sanitize(raw)
}

// Hash computes the one-way digest of a structurally valid token.
func (u *tokenUseCase) Hash(ctx context.Context, token string) (domain.Digest, error) {
	return u.hasher.Hash(token)
}

// SecurityMetrics returns a read-only snapshot of the security telemetry.
func (u *tokenUseCase) SecurityMetrics() domain.SecurityMetrics {
	return u.tracker.Snapshot()
}

// ResetMetrics returns the security telemetry to its initial state.
func (u *tokenUseCase) ResetMetrics() {
	u.tracker.Reset()
}
