package request

// CreateItemRequest represents an inventory item creation request
type CreateItemRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Category     string  `json:"category" binding:"required"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	Price        float64 `json:"price" binding:"min=0"`
	ReorderLevel int     `json:"reorder_level" binding:"min=0"`
	Unit         string  `json:"unit" binding:"required"`
	Description  *string `json:"description"`
}

// UpdateItemRequest represents an inventory item update request
type UpdateItemRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Category     *string  `json:"category"`
	Quantity     *int     `json:"quantity" binding:"omitempty,min=0"`
	Price        *float64 `json:"price" binding:"omitempty,min=0"`
	ReorderLevel *int     `json:"reorder_level" binding:"omitempty,min=0"`
	Unit         *string  `json:"unit"`
	Description  *string  `json:"description"`
}

// RestockRequest represents a restock request
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// InventoryFilterRequest represents inventory list query parameters
type InventoryFilterRequest struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
}
