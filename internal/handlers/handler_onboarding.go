package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/middleware"
)

// OnboardingHandler handles the onboarding approval hook.
type OnboardingHandler struct {
	onboardingService portssvc.OnboardingSvcFacade
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(os portssvc.OnboardingSvcFacade) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: os}
}

// RegisterOnboardingRoutes sets up the onboarding routes.
func RegisterOnboardingRoutes(rg *gin.RouterGroup, os portssvc.OnboardingSvcFacade) {
	h := NewOnboardingHandler(os)
	rg.POST("/onboarding/:userID/approve", h.ApproveOnboarding)
}

// ApproveOnboarding godoc
// @Summary Approve an onboarding application
// @Description Marks the employee's onboarding approved and provisions their visa document sequence. HR only. Idempotent.
// @Tags onboarding
// @Produce json
// @Param userID path string true "Employee User ID"
// @Success 200 {object} domain.EmployeeProfile
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /onboarding/{userID}/approve [post]
func (h *OnboardingHandler) ApproveOnboarding(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	targetUserID := c.Param("userID")

	profile, err := h.onboardingService.ApproveOnboarding(c.Request.Context(), auth, targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "HR role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to approve onboarding", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve onboarding"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
