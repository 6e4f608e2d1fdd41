package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/checkin/internal/token/http/dto"
	tokenUseCase "github.com/allisson/checkin/internal/token/usecase"
)

// SecurityMetricsHandler handles HTTP requests for the security telemetry aggregate.
type SecurityMetricsHandler struct {
	tokenUseCase tokenUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewSecurityMetricsHandler creates a new security metrics handler with required dependencies.
func NewSecurityMetricsHandler(useCase tokenUseCase.TokenUseCase, logger *slog.Logger) *SecurityMetricsHandler {
	return &SecurityMetricsHandler{
		tokenUseCase: useCase,
		logger:       logger,
	}
}

// GetHandler returns a snapshot of the security telemetry.
// GET /v1/security/metrics
func (h *SecurityMetricsHandler) GetHandler(c *gin.Context) {
	metrics := h.tokenUseCase.SecurityMetrics()

	c.JSON(http.StatusOK, dto.MapSecurityMetricsToResponse(metrics))
}

// ResetHandler returns the security telemetry to its initial state.
// POST /v1/security/metrics/reset - Test and ops hook only.
// Returns 200 OK with the fresh snapshot.
func (h *SecurityMetricsHandler) ResetHandler(c *gin.Context) {
	h.tokenUseCase.ResetMetrics()
	h.logger.Info("security metrics reset")

	c.JSON(http.StatusOK, dto.MapSecurityMetricsToResponse(h.tokenUseCase.SecurityMetrics()))
}
