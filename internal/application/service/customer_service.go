package service

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/aquadrill/borewell-api/pkg/invoice"
	"github.com/aquadrill/borewell-api/pkg/numwords"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles customer and service job operations
type CustomerService struct {
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
	billing       *BillingService
	cfg           *config.BillingConfig
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	inventoryRepo repository.InventoryRepository,
	billing *BillingService,
	cfg *config.BillingConfig,
) *CustomerService {
	return &CustomerService{
		customerRepo:  customerRepo,
		inventoryRepo: inventoryRepo,
		billing:       billing,
		cfg:           cfg,
	}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name          string
	Phone         string
	Address       string
	Email         *string
	ServiceType   enum.ServiceType
	ServiceDate   time.Time
	BorewellDepth *int
	PumpType      *string
	PumpModel     *string
	Accessories   []string
	PaymentStatus enum.PaymentStatus
	PaymentMethod *string
	Notes         *string
}

func (in *CreateCustomerInput) billInput() *BillInput {
	return &BillInput{
		ServiceType:   in.ServiceType,
		BorewellDepth: in.BorewellDepth,
		PumpType:      in.PumpType,
		PumpModel:     in.PumpModel,
		Accessories:   in.Accessories,
	}
}

// CreateCustomer registers a customer with their service job, computes
// the bill, and commits the stock the job consumes. Out-of-stock
// selections block the whole intake; the caller gets every violation in
// one response rather than fixing them one at a time.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if !input.ServiceType.Known() {
		return nil, apperror.NewBadRequestError("Unknown service type: " + string(input.ServiceType))
	}

	stock, violations, err := s.billing.ValidateStock(ctx, input.billInput())
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, apperror.NewUnprocessableError("Selected items are out of stock", violations)
	}

	bill, err := s.billing.ComputeBill(ctx, input.billInput())
	if err != nil {
		return nil, err
	}

	words, err := numwords.ConvertCents(bill.GrandTotalCents)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:            uuid.New(),
		Name:          input.Name,
		Phone:         input.Phone,
		Address:       input.Address,
		Email:         input.Email,
		ServiceType:   input.ServiceType,
		ServiceDate:   input.ServiceDate,
		BorewellDepth: input.BorewellDepth,
		PumpType:      input.PumpType,
		PumpModel:     input.PumpModel,
		Accessories:   input.Accessories,
		TotalAmount:   bill.SubtotalCents,
		Taxes:         bill.TaxCents,
		GrandTotal:    bill.GrandTotalCents,
		PaymentStatus: input.PaymentStatus,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		BillID:        s.newBillID(ctx),
		AmountInWords: words,
	}
	customer.QRCodeURL = invoice.QRCodeURL(s.cfg.QREndpoint, customer.BillID,
		customer.ID.String(), customer.GetGrandTotalDecimal())

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	for _, line := range stock {
		if err := s.inventoryRepo.DecrementStock(ctx, line.ItemID, line.Needed); err != nil {
			// the record is already committed; log and keep going so one
			// raced item does not lose the whole intake
			log.Printf("stock decrement failed for %s: %v", line.Name, err)
		}
	}

	return customer, nil
}

// newBillID generates a bill ID, retrying a few times on collision
func (s *CustomerService) newBillID(ctx context.Context) string {
	for i := 0; i < 3; i++ {
		id := invoice.NewBillID(s.cfg.BillPrefix)
		existing, err := s.customerRepo.GetByBillID(ctx, id)
		if err == nil && existing == nil {
			return id
		}
	}
	return invoice.NewBillID(s.cfg.BillPrefix)
}

// Quote prices a prospective job without persisting anything
func (s *CustomerService) Quote(ctx context.Context, input *CreateCustomerInput) (*BillBreakdown, error) {
	if !input.ServiceType.Known() {
		return nil, apperror.NewBadRequestError("Unknown service type: " + string(input.ServiceType))
	}
	return s.billing.ComputeBill(ctx, input.billInput())
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with filtering and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID            uuid.UUID
	Name          *string
	Phone         *string
	Address       *string
	Email         *string
	ServiceType   *enum.ServiceType
	ServiceDate   *time.Time
	BorewellDepth *int
	PumpType      *string
	PumpModel     *string
	Accessories   []string
	PaymentStatus *enum.PaymentStatus
	PaymentMethod *string
	Notes         *string
}

// UpdateCustomer updates a customer. When the change touches anything
// the bill is priced from, the amounts, words, and QR payload are
// recomputed so the stored bill never drifts from the job details.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.ServiceDate != nil {
		customer.ServiceDate = *input.ServiceDate
	}
	if input.PaymentStatus != nil {
		customer.PaymentStatus = *input.PaymentStatus
	}
	if input.PaymentMethod != nil {
		customer.PaymentMethod = input.PaymentMethod
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	repriced := false
	if input.ServiceType != nil && *input.ServiceType != customer.ServiceType {
		if !input.ServiceType.Known() {
			return nil, apperror.NewBadRequestError("Unknown service type: " + string(*input.ServiceType))
		}
		customer.ServiceType = *input.ServiceType
		repriced = true
	}
	if input.BorewellDepth != nil {
		customer.BorewellDepth = input.BorewellDepth
		repriced = true
	}
	if input.PumpType != nil {
		customer.PumpType = input.PumpType
		repriced = true
	}
	if input.PumpModel != nil {
		customer.PumpModel = input.PumpModel
		repriced = true
	}
	if input.Accessories != nil {
		customer.Accessories = input.Accessories
		repriced = true
	}

	if repriced {
		bill, err := s.billing.ComputeBill(ctx, &BillInput{
			ServiceType:   customer.ServiceType,
			BorewellDepth: customer.BorewellDepth,
			PumpType:      customer.PumpType,
			PumpModel:     customer.PumpModel,
			Accessories:   customer.Accessories,
		})
		if err != nil {
			return nil, err
		}
		if err := s.applyAmounts(customer, bill.SubtotalCents, bill.TaxCents, bill.GrandTotalCents); err != nil {
			return nil, err
		}
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateBillingInput carries a manual amount override
type UpdateBillingInput struct {
	ID          uuid.UUID
	TotalAmount float64 // pre-tax amount in rupees
}

// UpdateBilling overrides the computed bill with a manually negotiated
// amount. Tax is re-derived from the new base so the GST line stays
// consistent, and the words and QR payload follow the new grand total.
func (s *CustomerService) UpdateBilling(ctx context.Context, input *UpdateBillingInput) (*entity.Customer, error) {
	if input.TotalAmount < 0 {
		return nil, apperror.NewBadRequestError("Amount cannot be negative")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	subtotal := int64(math.Round(input.TotalAmount * 100))
	tax := int64(math.Round(float64(subtotal) * s.cfg.TaxRate))
	if err := s.applyAmounts(customer, subtotal, tax, subtotal+tax); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// applyAmounts sets the bill amounts and the values derived from them
func (s *CustomerService) applyAmounts(customer *entity.Customer, subtotal, tax, grand int64) error {
	words, err := numwords.ConvertCents(grand)
	if err != nil {
		return err
	}
	customer.TotalAmount = subtotal
	customer.Taxes = tax
	customer.GrandTotal = grand
	customer.AmountInWords = words
	customer.QRCodeURL = invoice.QRCodeURL(s.cfg.QREndpoint, customer.BillID,
		customer.ID.String(), float64(grand)/100)
	return nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}
