package entity

import (
	"encoding/json"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem represents one stocked product (pump, pipe, accessory...)
type InventoryItem struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name            string            `gorm:"size:255;not null" json:"name"`
	Category        enum.ItemCategory `gorm:"default:5" json:"category"`
	Quantity        int               `gorm:"default:0;check:quantity >= 0" json:"quantity"`
	Price           int64             `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	ReorderLevel    int               `gorm:"default:0" json:"reorder_level"`
	Unit            string            `gorm:"size:50" json:"unit"`
	Description     *string           `gorm:"type:text" json:"description,omitempty"`
	LastRestockedAt time.Time         `json:"last_restocked_date"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	type Alias InventoryItem
	return json.Marshal(&struct {
		Alias
		Price    float64 `json:"price"`
		LowStock bool    `json:"low_stock"`
	}{
		Alias:    Alias(i),
		Price:    float64(i.Price) / 100,
		LowStock: i.IsLowStock(),
	})
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item is at or below its reorder level
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// GetPriceDecimal returns the unit price as a decimal (for display)
func (i *InventoryItem) GetPriceDecimal() float64 {
	return float64(i.Price) / 100
}

// SetPriceFromDecimal sets the unit price from a decimal value
func (i *InventoryItem) SetPriceFromDecimal(price float64) {
	i.Price = int64(price * 100)
}
