package repository

import (
	"context"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryFilterParams narrows inventory list queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.ItemCategory
	LowStock   bool
}

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	// FindByName matches an item by exact (case-insensitive) name
	FindByName(ctx context.Context, name string) (*entity.InventoryItem, error)
	// FindPump matches a pump item whose name contains both the pump type
	// and model, e.g. type "Submersible" + model "HP-2000" matches
	// "Submersible Pump HP-2000"
	FindPump(ctx context.Context, pumpType, pumpModel string) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	ListLowStock(ctx context.Context) ([]entity.InventoryItem, error)
	// DecrementStock atomically reduces quantity, refusing to go negative
	DecrementStock(ctx context.Context, id uuid.UUID, by int) error
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
}
