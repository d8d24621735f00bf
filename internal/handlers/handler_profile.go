package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/middleware"
)

// maxUploadBytes caps multipart document uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// ProfileHandler handles the employee-facing profile endpoints.
type ProfileHandler struct {
	visaService portssvc.VisaSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(vs portssvc.VisaSvcFacade) *ProfileHandler {
	return &ProfileHandler{visaService: vs}
}

// RegisterProfileRoutes sets up the employee self-service routes.
func RegisterProfileRoutes(rg *gin.RouterGroup, vs portssvc.VisaSvcFacade) {
	h := NewProfileHandler(vs)

	profile := rg.Group("/profile")
	{
		profile.GET("/visa-status", h.GetOwnVisaStatus)
		profile.POST("/documents/:docType", h.UploadDocument)
	}
}

// GetOwnVisaStatus godoc
// @Summary Get own visa status
// @Description Returns the caller's derived document view including the next required step.
// @Tags profile
// @Produce json
// @Success 200 {object} dto.VisaStatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /profile/visa-status [get]
func (h *ProfileHandler) GetOwnVisaStatus(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	resp, err := h.visaService.GetVisaStatus(c.Request.Context(), auth, auth.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to get own visa status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get visa status"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadDocument godoc
// @Summary Upload a visa document
// @Description Stores the uploaded file and records it against the caller's document slot. Re-uploading a rejected document resets it to pending review.
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param docType path string true "Document type" Enums(optReceipt, optEad, i983, i20)
// @Param file formData file true "Document file"
// @Success 201 {object} dto.UploadDocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document slot locked or not part of the sequence"
// @Failure 500 {object} ErrorResponse "Storage failure; no state was changed"
// @Security BearerAuth
// @Router /profile/documents/{docType} [post]
func (h *ProfileHandler) UploadDocument(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	docType := c.Param("docType")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Multipart 'file' field required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File exceeds the 10MiB upload limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	if len(content) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "File exceeds the 10MiB upload limit"})
		return
	}

	resp, err := h.visaService.UploadDocument(
		c.Request.Context(),
		auth,
		docType,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		content,
	)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Profile not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrStorage):
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Document storage failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store document"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to upload document", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to upload document"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}
