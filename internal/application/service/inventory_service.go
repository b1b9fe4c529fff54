package service

import (
	"context"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryService handles inventory catalog operations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	Name         string
	Category     enum.ItemCategory
	Quantity     int
	Price        float64 // rupees
	ReorderLevel int
	Unit         string
	Description  *string
}

// CreateItem adds a product to the catalog
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	existing, err := s.inventoryRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An item with this name already exists")
	}

	item := &entity.InventoryItem{
		ID:              uuid.New(),
		Name:            input.Name,
		Category:        input.Category,
		Quantity:        input.Quantity,
		ReorderLevel:    input.ReorderLevel,
		Unit:            input.Unit,
		Description:     input.Description,
		LastRestockedAt: time.Now(),
	}
	item.SetPriceFromDecimal(input.Price)

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// ListItems lists inventory items with filtering and pagination
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// ListLowStock returns every item at or below its reorder level
func (s *InventoryService) ListLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.ListLowStock(ctx)
}

// UpdateItemInput represents the update inventory item input
type UpdateItemInput struct {
	ID           uuid.UUID
	Name         *string
	Category     *enum.ItemCategory
	Quantity     *int
	Price        *float64
	ReorderLevel *int
	Unit         *string
	Description  *string
}

// UpdateItem updates an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		item.SetPriceFromDecimal(*input.Price)
	}
	if input.ReorderLevel != nil {
		item.ReorderLevel = *input.ReorderLevel
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.Description != nil {
		item.Description = input.Description
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RestockItem adds stock to an item and stamps the restock date
func (s *InventoryService) RestockItem(ctx context.Context, id uuid.UUID, quantity int) (*entity.InventoryItem, error) {
	if quantity <= 0 {
		return nil, apperror.NewBadRequestError("Restock quantity must be positive")
	}

	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	item.Quantity += quantity
	item.LastRestockedAt = time.Now()

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}
