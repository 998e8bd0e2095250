package handler

import (
	"github.com/gin-gonic/gin"
	inventoryapp "github.com/stockpilot/backend/internal/application/inventory"
)

// InventoryHandler handles inventory API endpoints
type InventoryHandler struct {
	BaseHandler
	itemService *inventoryapp.ItemService
	authMW      gin.HandlerFunc
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(itemService *inventoryapp.ItemService, authMW gin.HandlerFunc) *InventoryHandler {
	return &InventoryHandler{
		itemService: itemService,
		authMW:      authMW,
	}
}

// RegisterRoutes registers inventory routes
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/inventory", h.authMW)
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// Create creates a new inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// List returns inventory items, optionally filtered by exact category
func (h *InventoryHandler) List(c *gin.Context) {
	var category *string
	if value, ok := c.GetQuery("category"); ok {
		category = &value
	}

	items, err := h.itemService.List(c.Request.Context(), category)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// GetByID returns a single inventory item
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Update updates an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req inventoryapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete removes an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
