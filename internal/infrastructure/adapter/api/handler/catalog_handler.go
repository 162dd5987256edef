package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/atgamehub/storefront/internal/domain/port/core"
	"github.com/atgamehub/storefront/internal/domain/port/usecase"
	"github.com/atgamehub/storefront/internal/infrastructure/adapter/api/dto"
)

// CatalogHandler handles catalog browsing and image administration
type CatalogHandler struct {
	catalog usecase.CatalogUseCase
	errors  *ErrorResponder
	logger  coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalog usecase.CatalogUseCase, errors *ErrorResponder, logger coreport.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, errors: errors, logger: logger}
}

// Lines handles GET /catalog/lines
func (h *CatalogHandler) Lines(c *gin.Context) {
	lines, err := h.catalog.Lines(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// Items handles GET /catalog/lines/:lineId/items
func (h *CatalogHandler) Items(c *gin.Context) {
	items, err := h.catalog.Items(c.Request.Context(), c.Param("lineId"), c.Query("category"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Images handles GET /admin/images
func (h *CatalogHandler) Images(c *gin.Context) {
	images, err := h.catalog.Images(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// SetImage handles PUT /admin/images/:key
func (h *CatalogHandler) SetImage(c *gin.Context) {
	var req dto.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, err)
		return
	}

	if err := h.catalog.SetImage(c.Request.Context(), c.Param("key"), req.URL); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteImage handles DELETE /admin/images/:key
func (h *CatalogHandler) DeleteImage(c *gin.Context) {
	if err := h.catalog.DeleteImage(c.Request.Context(), c.Param("key")); err != nil {
		h.errors.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
