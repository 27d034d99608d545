package handlers

import (
	"errors"
	"strconv"

	"designmeta/internal/caching"
	"designmeta/internal/common"
	"designmeta/internal/models"
	"designmeta/internal/services"

	"github.com/labstack/echo/v4"
)

// AjaxHandlers is the admin-action endpoint: a single POST route dispatched
// by the "action" form parameter, answering with the {success, data}
// envelope regardless of outcome.
type AjaxHandlers struct {
	designService services.DesignImageService
	capabilities  services.CapabilityService
	cacheService  caching.CacheService
}

func NewAjaxHandlers(designService services.DesignImageService, capabilities services.CapabilityService, cacheService caching.CacheService) *AjaxHandlers {
	return &AjaxHandlers{
		designService: designService,
		capabilities:  capabilities,
		cacheService:  cacheService,
	}
}

// HandleAction handles POST /admin-ajax
func (h *AjaxHandlers) HandleAction(c echo.Context) error {
	switch c.FormValue("action") {
	case models.ActionDownloadOriginal:
		return h.downloadOriginal(c)
	default:
		return common.SendAjaxError(c, "Unknown action")
	}
}

// downloadOriginal is a linear validation chain: nonce, then capability,
// then product id, then resolution. The order is part of the contract — an
// invalid nonce short-circuits before any capability or data access.
func (h *AjaxHandlers) downloadOriginal(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendAjaxError(c, "Invalid nonce")
	}
	valid, err := h.cacheService.VerifyNonce(ctx, userID, c.FormValue("nonce"))
	if err != nil || !valid {
		return common.SendAjaxError(c, "Invalid nonce")
	}

	can, err := h.capabilities.UserCan(ctx, userID, models.CapabilityEditProducts)
	if err != nil || !can {
		return common.SendAjaxError(c, "Insufficient permissions")
	}

	productID, err := strconv.ParseInt(c.FormValue("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		return common.SendAjaxError(c, "Invalid product ID")
	}

	descriptor, err := h.designService.DownloadOriginal(ctx, productID)
	if err != nil {
		if errors.Is(err, services.ErrNoDesignImage) {
			return common.SendAjaxError(c, "No design image found for this product")
		}
		return common.SendAjaxError(c, "Download failed")
	}

	return common.SendAjaxSuccess(c, descriptor)
}
