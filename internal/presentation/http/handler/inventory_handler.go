package handler

import (
	"github.com/aquadrill/borewell-api/internal/application/service"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/request"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/response"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// parseItemCategory maps the wire names onto the enum
func parseItemCategory(s string) (enum.ItemCategory, bool) {
	switch s {
	case "Pump":
		return enum.ItemCategoryPump, true
	case "Motor":
		return enum.ItemCategoryMotor, true
	case "Pipe":
		return enum.ItemCategoryPipe, true
	case "Valve":
		return enum.ItemCategoryValve, true
	case "Electrical":
		return enum.ItemCategoryElectrical, true
	case "Accessory":
		return enum.ItemCategoryAccessory, true
	}
	return enum.ItemCategoryAccessory, false
}

// List handles listing inventory items
func (h *InventoryHandler) List(c *gin.Context) {
	var filter request.InventoryFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InventoryFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:   filter.Search,
		LowStock: filter.LowStock,
	}

	if filter.Category != "" {
		category, ok := parseItemCategory(filter.Category)
		if !ok {
			response.BadRequest(c, "Invalid category filter")
			return
		}
		params.Category = &category
	}

	result, err := h.inventoryService.ListItems(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory retrieved successfully", result)
}

// LowStock lists every item at or below its reorder level
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.inventoryService.ListLowStock(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", items)
}

// Create handles adding an inventory item
func (h *InventoryHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, ok := parseItemCategory(req.Category)
	if !ok {
		response.BadRequest(c, "Invalid category")
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), &service.CreateItemInput{
		Name:         req.Name,
		Category:     category,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
		Unit:         req.Unit,
		Description:  req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// Get handles retrieving a single inventory item
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// Update handles updating an inventory item
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		ID:           id,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Price:        req.Price,
		ReorderLevel: req.ReorderLevel,
		Unit:         req.Unit,
		Description:  req.Description,
	}
	if req.Category != nil {
		category, ok := parseItemCategory(*req.Category)
		if !ok {
			response.BadRequest(c, "Invalid category")
			return
		}
		input.Category = &category
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// Restock handles adding stock to an item
func (h *InventoryHandler) Restock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.RestockItem(c.Request.Context(), id, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory item restocked successfully", item)
}

// Delete handles deleting an inventory item
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
