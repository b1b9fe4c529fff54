package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/google/uuid"
)

// BillingService prices a service job against the inventory catalog
type BillingService struct {
	inventoryRepo repository.InventoryRepository
	cfg           *config.BillingConfig
}

// NewBillingService creates a new billing service
func NewBillingService(inventoryRepo repository.InventoryRepository, cfg *config.BillingConfig) *BillingService {
	return &BillingService{inventoryRepo: inventoryRepo, cfg: cfg}
}

// BillInput carries the job details that drive pricing
type BillInput struct {
	ServiceType   enum.ServiceType
	BorewellDepth *int
	PumpType      *string
	PumpModel     *string
	Accessories   []string
}

// BillLine is one priced line of the bill
type BillLine struct {
	Description string `json:"description"`
	AmountCents int64  `json:"-"`
}

// BillBreakdown is the computed bill before it is attached to a customer
type BillBreakdown struct {
	Lines           []BillLine
	SubtotalCents   int64
	TaxCents        int64
	GrandTotalCents int64
}

// StockLine is a selected item resolved to an inventory record
type StockLine struct {
	ItemID uuid.UUID
	Name   string
	Needed int
}

// pumpNone is the intake form's explicit no-pump choice, submitted as a
// literal value rather than an empty field.
const pumpNone = "None"

func pumpSelected(pumpType *string) bool {
	return pumpType != nil && *pumpType != "" && *pumpType != pumpNone
}

// ComputeBill prices the job. The pump is looked up by type and model
// unless the selection is the explicit "None" choice, each accessory by
// name; anything the catalog does not carry falls back
// to the configured default price. Drilling charges apply only to service
// types that involve a depth. The computation reads nothing but the
// catalog, so calling it twice with the same input yields the same bill.
func (s *BillingService) ComputeBill(ctx context.Context, input *BillInput) (*BillBreakdown, error) {
	var lines []BillLine
	var subtotal int64

	if pumpSelected(input.PumpType) {
		model := ""
		if input.PumpModel != nil {
			model = *input.PumpModel
		}
		item, err := s.inventoryRepo.FindPump(ctx, *input.PumpType, model)
		if err != nil {
			return nil, err
		}

		price := s.cfg.FallbackItemCents
		desc := *input.PumpType
		if model != "" {
			desc = desc + " " + model
		}
		if item != nil {
			price = item.Price
			desc = item.Name
		}
		lines = append(lines, BillLine{Description: desc, AmountCents: price})
		subtotal += price
	}

	for _, name := range input.Accessories {
		item, err := s.inventoryRepo.FindByName(ctx, name)
		if err != nil {
			return nil, err
		}

		price := s.cfg.FallbackItemCents
		desc := name
		if item != nil {
			price = item.Price
			desc = item.Name
		}
		lines = append(lines, BillLine{Description: desc, AmountCents: price})
		subtotal += price
	}

	if input.ServiceType.HasDepth() && input.BorewellDepth != nil && *input.BorewellDepth > 0 {
		depth := *input.BorewellDepth
		amount := int64(depth) * s.cfg.DepthRateCents
		lines = append(lines, BillLine{
			Description: fmt.Sprintf("Borewell drilling (%d ft)", depth),
			AmountCents: amount,
		})
		subtotal += amount
	}

	tax := int64(math.Round(float64(subtotal) * s.cfg.TaxRate))
	return &BillBreakdown{
		Lines:           lines,
		SubtotalCents:   subtotal,
		TaxCents:        tax,
		GrandTotalCents: subtotal + tax,
	}, nil
}

// ValidateStock resolves the selected pump and accessories against the
// inventory catalog. Every resolved item comes back as a stock line so
// the caller can decrement it later; every blocking selection comes
// back as a violation. The check never stops at the first problem, the
// caller gets the complete list. A pump must exist in the catalog with
// stock on hand; accessories block only when the catalog carries them
// at zero quantity.
func (s *BillingService) ValidateStock(ctx context.Context, input *BillInput) ([]StockLine, []apperror.FieldError, error) {
	var resolved []StockLine
	var violations []apperror.FieldError

	if pumpSelected(input.PumpType) {
		model := ""
		if input.PumpModel != nil {
			model = *input.PumpModel
		}
		item, err := s.inventoryRepo.FindPump(ctx, *input.PumpType, model)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case item == nil:
			violations = append(violations, apperror.FieldError{
				Field:   "pump_model",
				Message: strings.TrimSpace(*input.PumpType+" "+model) + " is not in the inventory catalog",
			})
		case item.Quantity < 1:
			violations = append(violations, apperror.FieldError{
				Field:   "pump_model",
				Message: item.Name + " is out of stock",
			})
		default:
			resolved = append(resolved, StockLine{ItemID: item.ID, Name: item.Name, Needed: 1})
		}
	}

	for _, name := range input.Accessories {
		item, err := s.inventoryRepo.FindByName(ctx, name)
		if err != nil {
			return nil, nil, err
		}
		if item == nil {
			continue
		}
		if item.Quantity < 1 {
			violations = append(violations, apperror.FieldError{
				Field:   "accessories",
				Message: item.Name + " is out of stock",
			})
			continue
		}
		resolved = append(resolved, StockLine{ItemID: item.ID, Name: item.Name, Needed: 1})
	}

	return resolved, violations, nil
}
