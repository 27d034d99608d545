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

// ProductHandlers hosts the product-save hook: it reads the two design image
// fields from the submitted form and hands them to the persistence service.
type ProductHandlers struct {
	designService services.DesignImageService
	capabilities  services.CapabilityService
}

func NewProductHandlers(designService services.DesignImageService, capabilities services.CapabilityService) *ProductHandlers {
	return &ProductHandlers{
		designService: designService,
		capabilities:  capabilities,
	}
}

// SaveProduct handles POST /admin/products/:id/save. Callers without the
// edit_products capability get a silent skip: nothing is written and no
// error surfaces — the product save itself is none of our business.
func (h *ProductHandlers) SaveProduct(c echo.Context) error {
	ctx := c.Request().Context()

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid product ID")
	}

	if !h.callerCan(c) {
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}

	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	form := c.Request().Form

	// A field is only processed when it was part of the submission;
	// submitting one never clears the other.
	var submittedID, submittedURL *string
	if values, ok := form[models.MetaDesignImageID]; ok && len(values) > 0 {
		submittedID = &values[0]
	}
	if values, ok := form[models.MetaDesignImageURL]; ok && len(values) > 0 {
		submittedURL = &values[0]
	}

	if err := h.designService.Save(ctx, productID, submittedID, submittedURL); err != nil {
		// Saves never fail outward; the field state just stays as it was.
		log.Printf("Failed to save design image fields for product %d: %v", productID, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *ProductHandlers) callerCan(c echo.Context) bool {
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
