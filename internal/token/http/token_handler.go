// Package http provides HTTP handlers for check-in token security operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/checkin/internal/httputil"
	"github.com/allisson/checkin/internal/token/http/dto"
	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
	customValidation "github.com/allisson/checkin/internal/validation"
)

// TokenHandler handles HTTP requests for token security operations.
// Coordinates generation, validation, sanitization, and hashing with TokenUseCase.
type TokenHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(useCase tokenUseCase.TokenUseCase, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// GenerateHandler issues a new check-in token.
// POST /v1/tokens
// Returns 201 Created with the token, its randomness source, and entropy tag.
func (h *TokenHandler) GenerateHandler(c *gin.Context) {
	token, err := h.tokenUseCase.Generate(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapGeneratedTokenToResponse(token))
}

// ValidateHandler runs a candidate token through the acceptance gate.
// POST /v1/tokens/validate
// Returns 200 OK with the gate result; a rejected token is not a request error.
func (h *TokenHandler) ValidateHandler(c *gin.Context) {
	var req dto.ValidateTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	result := h.tokenUseCase.Validate(c.Request.Context(), req.Token)

	c.JSON(http.StatusOK, dto.MapValidationResultToResponse(result))
}

// SanitizeHandler normalizes raw external input into canonical token form.
// POST /v1/tokens/sanitize
// Returns 200 OK with the canonical token, or a null token when the input
// cannot be normalized.
func (h *TokenHandler) SanitizeHandler(c *gin.Context) {
	var req dto.SanitizeTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	response := dto.SanitizeTokenResponse{}
	if token, ok := h.tokenUseCase.Sanitize(req.Raw); ok {
		response.Token = &token
	}

	c.JSON(http.StatusOK, response)
}

// HashHandler computes the one-way digest of a structurally valid token.
// POST /v1/tokens/hash
// Returns 200 OK with the digest, or 422 when the token is malformed.
func (h *TokenHandler) HashHandler(c *gin.Context) {
	var req dto.HashTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	digest, err := h.tokenUseCase.Hash(c.Request.Context(), req.Token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapDigestToResponse(digest))
}
