package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/visadesk/visa_desk_app/internal/apperrors"
	portssvc "github.com/visadesk/visa_desk_app/internal/core/ports/services"
	"github.com/visadesk/visa_desk_app/internal/middleware"
)

// FileHandler serves stored document binaries.
type FileHandler struct {
	fileService portssvc.FileSvcFacade
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fs portssvc.FileSvcFacade) *FileHandler {
	return &FileHandler{fileService: fs}
}

// RegisterFileRoutes sets up the file retrieval routes.
func RegisterFileRoutes(rg *gin.RouterGroup, fs portssvc.FileSvcFacade) {
	h := NewFileHandler(fs)
	rg.GET("/files/:fileID", h.GetFile)
}

// GetFile godoc
// @Summary Fetch a stored document
// @Description Streams a stored file. Owners and HR only. Pass download=1 for an attachment disposition (preview is inline).
// @Tags files
// @Produce octet-stream
// @Param fileID path string true "File ID"
// @Param download query int false "Set to 1 to force attachment download"
// @Success 200 {file} binary
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /files/{fileID} [get]
func (h *FileHandler) GetFile(c *gin.Context) {
	auth, ok := middleware.GetAuthFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	fileID := c.Param("fileID")

	meta, content, err := h.fileService.FetchFile(c.Request.Context(), auth, fileID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not allowed to access this file"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "File not found"})
		default:
			logger := middleware.GetLoggerFromCtx(c.Request.Context())
			logger.Error("Failed to fetch file", slog.String("error", err.Error()), slog.String("file_id", fileID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch file"})
		}
		return
	}

	disposition := "inline"
	if c.Query("download") == "1" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, meta.Filename))

	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, content)
}
