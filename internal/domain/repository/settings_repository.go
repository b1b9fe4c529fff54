package repository

import (
	"context"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
)

// SettingsRepository defines the interface for bill template storage
type SettingsRepository interface {
	// GetBillTemplate returns the singleton template row, nil when absent
	GetBillTemplate(ctx context.Context) (*entity.BillTemplate, error)
	Create(ctx context.Context, template *entity.BillTemplate) error
	Update(ctx context.Context, template *entity.BillTemplate) error
}
