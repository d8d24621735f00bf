package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/dto"
	"github.com/visadesk/visa_desk_app/internal/middleware"
)

// VisaStatusHandler handles the HR-facing visa document endpoints.
type VisaStatusHandler struct {
	visaService   portssvc.VisaSvcFacade
	rosterService portssvc.RosterSvcFacade
}

// NewVisaStatusHandler creates a new VisaStatusHandler.
func NewVisaStatusHandler(vs portssvc.VisaSvcFacade, rs portssvc.RosterSvcFacade) *VisaStatusHandler {
	return &VisaStatusHandler{visaService: vs, rosterService: rs}
}

// RegisterVisaStatusRoutes sets up the routes for visa status review and listing.
func RegisterVisaStatusRoutes(rg *gin.RouterGroup, vs portssvc.VisaSvcFacade, rs portssvc.RosterSvcFacade) {
	h := NewVisaStatusHandler(vs, rs)

	visaStatus := rg.Group("/visa-status")
	{
		visaStatus.GET("", h.ListEmployees)
		visaStatus.GET("/:userID", h.GetVisaStatus)
		visaStatus.PATCH("/:userID/documents/:docType/review", h.ReviewDocument)
		visaStatus.POST("/:userID/notify", h.NotifyNextStep)
	}
}

// ListEmployees godoc
// @Summary List employee visa statuses
// @Description Returns the filtered, sorted, paginated roster of employees with their derived visa status. HR only.
// @Tags visa-status
// @Produce json
// @Param title query string false "Exact title filter (case-insensitive)"
// @Param visaClass query string false "Visa class filter" Enums(opt, other)
// @Param overallStatus query string false "Overall status filter" Enums(neverSubmitted, pending, approved, rejected)
// @Param search query string false "Free-text search over name and email"
// @Param sort query string false "Sort/window mode" Enums(last7, last30, endSoon, endLate)
// @Param limit query int false "Page size; 0 returns everything"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /visa-status [get]
func (h *VisaStatusHandler) ListEmployees(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.rosterService.ListEmployees(c.Request.Context(), auth, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "HR role required"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetVisaStatus godoc
// @Summary Get one employee's visa status
// @Description Returns the derived document view for one employee. HR may read anyone; employees only themselves.
// @Tags visa-status
// @Produce json
// @Param userID path string true "Employee User ID"
// @Success 200 {object} dto.VisaStatusResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /visa-status/{userID} [get]
func (h *VisaStatusHandler) GetVisaStatus(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	targetUserID := c.Param("userID")

	resp, err := h.visaService.GetVisaStatus(c.Request.Context(), auth, targetUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not allowed to view this employee"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to get visa status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get visa status"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReviewDocument godoc
// @Summary Review a visa document
// @Description Applies an approve/reject decision to one uploaded document. HR only. Rejection requires feedback.
// @Tags visa-status
// @Accept json
// @Produce json
// @Param userID path string true "Employee User ID"
// @Param docType path string true "Document type" Enums(optReceipt, optEad, i983, i20)
// @Param review body dto.ReviewDocumentRequest true "Review decision"
// @Success 200 {object} dto.VisaStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document not reviewable in its current state"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /visa-status/{userID}/documents/{docType}/review [patch]
func (h *VisaStatusHandler) ReviewDocument(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	targetUserID := c.Param("userID")
	docType := c.Param("docType")

	var req dto.ReviewDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := h.visaService.ReviewDocument(c.Request.Context(), auth, targetUserID, docType, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "HR role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to review document", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to review document"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NotifyNextStep godoc
// @Summary Send a next-step reminder
// @Description Dispatches a reminder email with the employee's next required action. HR only. Does not change document state.
// @Tags visa-status
// @Accept json
// @Produce json
// @Param userID path string true "Employee User ID"
// @Param notify body dto.NotifyRequest true "Next step description"
// @Success 204 "Reminder dispatched"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /visa-status/{userID}/notify [post]
func (h *VisaStatusHandler) NotifyNextStep(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	targetUserID := c.Param("userID")

	var req dto.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.visaService.NotifyNextStep(c.Request.Context(), auth, targetUserID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "HR role required"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to send reminder", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to send reminder"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
