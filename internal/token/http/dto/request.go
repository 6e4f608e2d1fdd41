// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/checkin/internal/validation"
)

// ValidateTokenRequest contains the candidate token to run through the
// acceptance gate. The candidate is deliberately unconstrained here: the
// gate itself reports malformed input as a rejection, not a request error.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the validate token request is valid.
func (r *ValidateTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Length(0, 255),
		),
	)
}

// SanitizeTokenRequest contains raw external input to normalize into
// canonical token form.
type SanitizeTokenRequest struct {
	Raw string `json:"raw"`
}

// Validate checks if the sanitize token request is valid.
func (r *SanitizeTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Raw,
			validation.Length(0, 255),
		),
	)
}

// HashTokenRequest contains the token to digest.
type HashTokenRequest struct {
	Token string `json:"token"`
}

// Validate checks if the hash token request is valid.
func (r *HashTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
			customValidation.TokenFormat,
		),
	)
}

// VerifyCheckinRequest contains the parameters for verifying a check-in
// against the session-validity service.
type VerifyCheckinRequest struct {
	Token       string `json:"token"`
	AuthContext string `json:"auth_context"`
}

// Validate checks if the verify check-in request is valid.
func (r *VerifyCheckinRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.AuthContext,
			validation.Length(0, 255),
		),
	)
}
