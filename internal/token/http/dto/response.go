// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	"github.com/allisson/checkin/internal/session"
	"github.com/allisson/checkin/internal/token/domain"
)

// GenerateTokenResponse represents a freshly issued check-in token.
type GenerateTokenResponse struct {
	Token       string  `json:"token"`
	Source      string  `json:"source"`
	EntropyBits float64 `json:"entropy_bits"`
	Flagged     bool    `json:"flagged"`
}

// MapGeneratedTokenToResponse converts a domain generated token to an API response.
func MapGeneratedTokenToResponse(token domain.GeneratedToken) GenerateTokenResponse {
	return GenerateTokenResponse{
		Token:       token.Value,
		Source:      token.Source.String(),
		EntropyBits: token.EntropyBits,
		Flagged:     token.Flagged,
	}
}

// ValidateTokenResponse represents the result of running a candidate token
// through the acceptance gate.
type ValidateTokenResponse struct {
	IsValid       bool    `json:"is_valid"`
	Reason        string  `json:"reason,omitempty"`
	EntropyBits   float64 `json:"entropy_bits"`
	CollisionRisk string  `json:"collision_risk"`
}

// MapValidationResultToResponse converts a domain validation result to an API response.
func MapValidationResultToResponse(result domain.ValidationResult) ValidateTokenResponse {
	return ValidateTokenResponse{
		IsValid:       result.IsValid,
		Reason:        result.Reason,
		EntropyBits:   result.EntropyBits,
		CollisionRisk: string(result.CollisionRisk),
	}
}

// SanitizeTokenResponse represents the result of normalizing raw input.
// Token is null when the input cannot be normalized into a valid token.
type SanitizeTokenResponse struct {
	Token *string `json:"token"`
}

// HashTokenResponse represents the one-way digest of a token.
type HashTokenResponse struct {
	Hash string `json:"hash"`
	Path string `json:"path"`
}

// MapDigestToResponse converts a domain digest to an API response.
func MapDigestToResponse(digest domain.Digest) HashTokenResponse {
	return HashTokenResponse{
		Hash: digest.Value,
		Path: digest.Path.String(),
	}
}

// SecurityMetricsResponse represents the running security telemetry aggregate.
type SecurityMetricsResponse struct {
	TokenEntropyBits      float64 `json:"token_entropy_bits"`
	CollisionProbability  float64 `json:"collision_probability"`
	UniqueTokensGenerated uint64  `json:"unique_tokens_generated"`
	ValidationFailures    uint64  `json:"validation_failures"`
	SecurityLevel         string  `json:"security_level"`
}

// MapSecurityMetricsToResponse converts domain security metrics to an API response.
func MapSecurityMetricsToResponse(metrics domain.SecurityMetrics) SecurityMetricsResponse {
	return SecurityMetricsResponse{
		TokenEntropyBits:      metrics.TokenEntropyBits,
		CollisionProbability:  metrics.CollisionProbability,
		UniqueTokensGenerated: metrics.UniqueTokensGenerated,
		ValidationFailures:    metrics.ValidationFailures,
		SecurityLevel:         metrics.SecurityLevel.String(),
	}
}

// VerifyCheckinResponse represents the outcome of a check-in verification:
// the local acceptance gate plus the session-validity record.
type VerifyCheckinResponse struct {
	Accepted      bool       `json:"accepted"`
	Reason        string     `json:"reason,omitempty"`
	SessionValid  bool       `json:"session_valid"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	TimeRemaining int64      `json:"time_remaining_seconds"`
	SessionAge    int64      `json:"session_age_seconds"`
	SessionError  string     `json:"session_error,omitempty"`
}

// MapValidityToVerifyResponse converts a session validity record to a
// verify check-in API response.
func MapValidityToVerifyResponse(validity session.Validity) VerifyCheckinResponse {
	return VerifyCheckinResponse{
		Accepted:      validity.IsValid,
		SessionValid:  validity.IsValid,
		ExpiresAt:     validity.ExpiresAt,
		TimeRemaining: validity.TimeRemaining,
		SessionAge:    validity.SessionAge,
		SessionError:  validity.Error,
	}
}
