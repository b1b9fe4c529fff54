package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	domainRepo "github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) FindByName(ctx context.Context, name string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "name ILIKE ?", escapeLike(name)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) FindPump(ctx context.Context, pumpType, pumpModel string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	query := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+escapeLike(pumpType)+"%")
	if pumpModel != "" {
		query = query.Where("name ILIKE ?", "%"+escapeLike(pumpModel)+"%")
	}
	err := query.First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// likeEscaper neutralizes pattern metacharacters so user-entered names
// match literally inside ILIKE patterns.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.LowStock {
		query = query.Where("quantity <= reorder_level")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *inventoryRepository) ListLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= reorder_level").
		Order("quantity ASC").
		Find(&items).Error
	return items, err
}

// DecrementStock reduces quantity with a guarded update so concurrent
// commits cannot drive it negative.
func (r *inventoryRepository) DecrementStock(ctx context.Context, id uuid.UUID, by int) error {
	result := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("id = ? AND quantity >= ?", id, by).
		Update("quantity", gorm.Expr("quantity - ?", by))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("insufficient stock for item %s", id)
	}
	return nil
}

func (r *inventoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).Count(&count).Error
	return count, err
}

func (r *inventoryRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.InventoryItem{}).
		Where("quantity <= reorder_level").
		Count(&count).Error
	return count, err
}
