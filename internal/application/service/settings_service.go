package service

import (
	"context"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
)

// SettingsService manages the bill template
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetBillTemplate returns the template, creating the default row when
// the installation has never saved one.
func (s *SettingsService) GetBillTemplate(ctx context.Context) (*entity.BillTemplate, error) {
	template, err := s.settingsRepo.GetBillTemplate(ctx)
	if err != nil {
		return nil, err
	}
	if template == nil {
		template = entity.DefaultBillTemplate()
		if err := s.settingsRepo.Create(ctx, template); err != nil {
			return nil, err
		}
	}
	return template, nil
}

// UpdateBillTemplateInput represents the update bill template input
type UpdateBillTemplateInput struct {
	CompanyName    *string
	CompanyAddress *string
	CompanyPhone   *string
	CompanyEmail   *string
	CompanyWebsite *string
	Footer         *string
	Terms          []string
}

// UpdateBillTemplate updates the company identity and boilerplate used
// on every invoice
func (s *SettingsService) UpdateBillTemplate(ctx context.Context, input *UpdateBillTemplateInput) (*entity.BillTemplate, error) {
	template, err := s.GetBillTemplate(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		template.CompanyName = *input.CompanyName
	}
	if input.CompanyAddress != nil {
		template.CompanyAddress = *input.CompanyAddress
	}
	if input.CompanyPhone != nil {
		template.CompanyPhone = *input.CompanyPhone
	}
	if input.CompanyEmail != nil {
		template.CompanyEmail = *input.CompanyEmail
	}
	if input.CompanyWebsite != nil {
		template.CompanyWebsite = *input.CompanyWebsite
	}
	if input.Terms != nil {
		template.Terms = input.Terms
	}
	if input.Footer != nil {
		template.Footer = *input.Footer
	}

	if err := s.settingsRepo.Update(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}
