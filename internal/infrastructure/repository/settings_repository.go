package repository

import (
	"context"
	"errors"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	domainRepo "github.com/aquadrill/borewell-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetBillTemplate(ctx context.Context) (*entity.BillTemplate, error) {
	var template entity.BillTemplate
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&template).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *settingsRepository) Create(ctx context.Context, template *entity.BillTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *settingsRepository) Update(ctx context.Context, template *entity.BillTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}
