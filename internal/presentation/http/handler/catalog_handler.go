package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/readytocook/billing-api/internal/application/service"
	"github.com/readytocook/billing-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Get handles retrieving the full catalog
func (h *CatalogHandler) Get(c *gin.Context) {
	catalog, err := h.catalogService.GetCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog retrieved successfully", catalog)
}

// AddCategory handles adding a category
func (h *CatalogHandler) AddCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.AddCategory(c.Request.Context(), req.Name); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category added successfully", nil)
}

// RemoveCategory handles removing a category
func (h *CatalogHandler) RemoveCategory(c *gin.Context) {
	name := c.Param("name")
	if err := h.catalogService.RemoveCategory(c.Request.Context(), name); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category removed successfully", nil)
}

// AddItem handles adding an item to a category
func (h *CatalogHandler) AddItem(c *gin.Context) {
	category := c.Param("name")

	var req struct {
		Item string `json:"item" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.AddItem(c.Request.Context(), category, req.Item); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Item added successfully", nil)
}

// RemoveItem handles removing an item from a category
func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	category := c.Param("name")
	item := c.Param("item")

	if err := h.catalogService.RemoveItem(c.Request.Context(), category, item); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item removed successfully", nil)
}
