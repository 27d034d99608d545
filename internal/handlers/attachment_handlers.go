package handlers

import (
	"log"
	"net/http"
	"strconv"

	"designmeta/internal/common"
	"designmeta/internal/models"
	"designmeta/internal/services"

	"github.com/labstack/echo/v4"
)

// AttachmentHandlers is the media picker's backend: upload an asset, read
// back its descriptor. Unlike the render and save paths this is a plain API
// surface, so authorization failures are explicit errors.
type AttachmentHandlers struct {
	attachmentService services.AttachmentService
	capabilities      services.CapabilityService
}

func NewAttachmentHandlers(attachmentService services.AttachmentService, capabilities services.CapabilityService) *AttachmentHandlers {
	return &AttachmentHandlers{
		attachmentService: attachmentService,
		capabilities:      capabilities,
	}
}

type attachmentResponse struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload handles POST /admin/attachments
func (h *AttachmentHandlers) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	can, err := h.capabilities.UserCan(ctx, userID, models.CapabilityEditProducts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error checking permission")
	}
	if !can {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unreadable file")
	}
	defer src.Close()

	attachment, url, err := h.attachmentService.Upload(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), src, fileHeader.Size)
	if err != nil {
		log.Printf("Attachment upload failed: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Upload failed")
	}

	return c.JSON(http.StatusCreated, attachmentResponse{
		ID:       attachment.ID,
		URL:      url,
		Filename: attachment.Filename(),
	})
}

// Get handles GET /admin/attachments/:id
func (h *AttachmentHandlers) Get(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	can, err := h.capabilities.UserCan(ctx, userID, models.CapabilityEditProducts)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Error checking permission")
	}
	if !can {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid attachment ID")
	}

	attachment, url, err := h.attachmentService.Get(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Lookup failed")
	}
	if attachment == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Attachment not found")
	}

	return c.JSON(http.StatusOK, attachmentResponse{
		ID:       attachment.ID,
		URL:      url,
		Filename: attachment.Filename(),
	})
}
