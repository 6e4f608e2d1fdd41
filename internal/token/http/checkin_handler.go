package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/checkin/internal/httputil"
	"github.com/allisson/checkin/internal/session"
	"github.com/allisson/checkin/internal/token/http/dto"
	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
	customValidation "github.com/allisson/checkin/internal/validation"
)

// CheckinHandler handles HTTP requests for check-in verification.
// Gates the supplied token locally before consulting the session-validity service.
type CheckinHandler struct {
	tokenUseCase  tokenUseCase.TokenUseCase
	sessionClient *session.Client
	logger        *slog.Logger
}

// NewCheckinHandler creates a new check-in handler with required dependencies.
func NewCheckinHandler(
	useCase tokenUseCase.TokenUseCase,
	sessionClient *session.Client,
	logger *slog.Logger,
) *CheckinHandler {
	return &CheckinHandler{
		tokenUseCase:  useCase,
		sessionClient: sessionClient,
		logger:        logger,
	}
}

// VerifyHandler verifies a check-in attempt.
// POST /v1/checkins/verify
// The raw token is sanitized and gated locally first; the session-validity
// service is only consulted for tokens that pass the gate. Returns 200 OK
// with the verification outcome, or 503 when the session service is
// unreachable.
func (h *CheckinHandler) VerifyHandler(c *gin.Context) {
	var req dto.VerifyCheckinRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, ok := h.tokenUseCase.Sanitize(req.Token)
	if !ok {
		c.JSON(http.StatusOK, dto.VerifyCheckinResponse{
			Accepted: false,
			Reason:   "token could not be normalized",
		})
		return
	}

	if result := h.tokenUseCase.Validate(c.Request.Context(), token); !result.IsValid {
		c.JSON(http.StatusOK, dto.VerifyCheckinResponse{
			Accepted: false,
			Reason:   result.Reason,
		})
		return
	}

	validity, err := h.sessionClient.Check(c.Request.Context(), token, req.AuthContext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValidityToVerifyResponse(validity))
}
