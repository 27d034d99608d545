package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"designmeta/internal/caching"
	"designmeta/internal/common"
	"designmeta/internal/models"
	"designmeta/internal/services"

	"github.com/labstack/echo/v4"
)

// EditorHandlers produces the admin editing surface for a product's design
// image: the form fragment and the client configuration consumed by the
// standalone design-image script. Both are silent no-ops for callers without
// the edit_products capability — unauthorized admins see nothing, not an
// error.
type EditorHandlers struct {
	resolver     services.ResolverService
	capabilities services.CapabilityService
	cacheService caching.CacheService
	ajaxURL      string
	uploadURL    string
	nonceTTL     time.Duration
}

func NewEditorHandlers(resolver services.ResolverService, capabilities services.CapabilityService, cacheService caching.CacheService, ajaxURL, uploadURL string, nonceTTL time.Duration) *EditorHandlers {
	return &EditorHandlers{
		resolver:     resolver,
		capabilities: capabilities,
		cacheService: cacheService,
		ajaxURL:      ajaxURL,
		uploadURL:    uploadURL,
		nonceTTL:     nonceTTL,
	}
}

var editorTemplate = template.Must(template.New("design-image-editor").Parse(`<div class="options_group">
<input type="hidden" id="{{.IDFieldName}}" name="{{.IDFieldName}}" value="{{.AttachmentValue}}" />
<p class="form-field">
	<label for="{{.IDFieldName}}">Admin design image</label><br/>
	<img id="wcpd_design_image_preview" src="{{.PreviewURL}}" style="max-width:200px;{{if not .HasImage}}display:none;{{end}}" /><br/>
	<button type="button" class="button wcpd_upload_button">Upload / Select Image</button>
	<button type="button" class="button wcpd_download_button" data-product-id="{{.ProductID}}"{{if not .HasImage}} style="display:none;"{{end}}>Download Original File</button>
	<button type="button" class="button wcpd_remove_button"{{if not .HasImage}} style="display:none;"{{end}}>Remove image</button>
	<span class="description">This image is visible to admins only and used as the product-specific design.</span>
</p>
<p class="form-field">
	<label for="{{.URLFieldName}}">Admin design image URL</label>
	<input type="url" id="{{.URLFieldName}}" name="{{.URLFieldName}}" value="{{.ImageURL}}" />
	<span class="description">Optional: enter a full image URL instead of using the media uploader.</span>
</p>
</div>
`))

type editorView struct {
	IDFieldName     string
	URLFieldName    string
	ProductID       int64
	AttachmentValue string
	ImageURL        string
	PreviewURL      string
	HasImage        bool
}

// RenderEditor handles GET /admin/products/:id/design-image/editor
func (h *EditorHandlers) RenderEditor(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.callerCan(c) {
		return c.NoContent(http.StatusNoContent)
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	record := h.resolver.Record(ctx, productID)
	resolution := h.resolver.Resolve(ctx, productID)

	view := editorView{
		IDFieldName:  models.MetaDesignImageID,
		URLFieldName: models.MetaDesignImageURL,
		ProductID:    productID,
		ImageURL:     record.ImageURL,
		PreviewURL:   resolution.PreviewURL,
		HasImage:     resolution.Source != models.SourceNone,
	}
	if record.AttachmentID != 0 {
		view.AttachmentValue = strconv.FormatInt(record.AttachmentID, 10)
	}

	var buf bytes.Buffer
	if err := editorTemplate.Execute(&buf, view); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render editor")
	}

	return c.HTML(http.StatusOK, buf.String())
}

// GetDesignImage handles GET /admin/products/:id/design-image
func (h *EditorHandlers) GetDesignImage(c echo.Context) error {
	ctx := c.Request().Context()

	if !h.callerCan(c) {
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"record":     h.resolver.Record(ctx, productID),
		"resolution": h.resolver.Resolve(ctx, productID),
	})
}

// ClientConfig handles GET /admin/design-image/config. It hands the client
// script its typed configuration: endpoint URLs plus a fresh nonce.
func (h *EditorHandlers) ClientConfig(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	can, err := h.capabilities.UserCan(ctx, userID, models.CapabilityEditProducts)
	if err != nil {
		log.Printf("Capability check failed for user %s: %v", userID, err)
		return c.NoContent(http.StatusNoContent)
	}
	if !can {
		return c.NoContent(http.StatusNoContent)
	}

	nonce, err := h.cacheService.IssueNonce(ctx, userID, h.nonceTTL)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue nonce")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"ajax_url":   h.ajaxURL,
		"upload_url": h.uploadURL,
		"nonce":      nonce,
	})
}

func (h *EditorHandlers) callerCan(c echo.Context) bool {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return false
	}
	can, err := h.capabilities.UserCan(ctx, userID, models.CapabilityEditProducts)
	if err != nil {
		log.Printf("Capability check failed for user %s: %v", userID, err)
		return false
	}
	return can
}
