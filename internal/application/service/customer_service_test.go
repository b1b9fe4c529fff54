package service

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/pkg/apperror"
)

func newTestCustomerService(inventory *fakeInventoryRepo) (*CustomerService, *fakeCustomerRepo) {
	cfg := &config.BillingConfig{
		TaxRate:           0.18,
		DepthRateCents:    15000,
		FallbackItemCents: 100000,
		BillPrefix:        "BW",
	}
	customers := &fakeCustomerRepo{}
	billing := NewBillingService(inventory, cfg)
	return NewCustomerService(customers, inventory, billing, cfg), customers
}

func installationInput() *CreateCustomerInput {
	return &CreateCustomerInput{
		Name:          "Ramesh Kumar",
		Phone:         "+91 98765 12345",
		Address:       "45 Lake View Road, Coimbatore",
		ServiceType:   enum.ServiceBorewellInstallation,
		ServiceDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		BorewellDepth: intPtr(200),
		PumpType:      strPtr("Submersible"),
		PumpModel:     strPtr("HP-2000"),
		Accessories:   []string{"Starter"},
	}
}

func TestCreateCustomerComputesBill(t *testing.T) {
	inventory := seedCatalog()
	svc, _ := newTestCustomerService(inventory)

	customer, err := svc.CreateCustomer(context.Background(), installationInput())
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	wantSubtotal := int64(1500000 + 120000 + 200*15000)
	if customer.TotalAmount != wantSubtotal {
		t.Errorf("TotalAmount = %d, want %d", customer.TotalAmount, wantSubtotal)
	}
	if customer.GrandTotal != customer.TotalAmount+customer.Taxes {
		t.Errorf("GrandTotal = %d, want subtotal+tax", customer.GrandTotal)
	}

	if ok, _ := regexp.MatchString(`^BW-\d{5}-\d{4}$`, customer.BillID); !ok {
		t.Errorf("BillID = %q, want BW-NNNNN-NNNN", customer.BillID)
	}
	if !strings.HasSuffix(customer.AmountInWords, "Rupees Only") {
		t.Errorf("AmountInWords = %q, want words ending in Rupees Only", customer.AmountInWords)
	}
	if !strings.Contains(customer.QRCodeURL, "cht=qr") {
		t.Errorf("QRCodeURL = %q, want a QR chart URL", customer.QRCodeURL)
	}
}

func TestCreateCustomerDecrementsStock(t *testing.T) {
	inventory := seedCatalog()
	svc, _ := newTestCustomerService(inventory)

	if _, err := svc.CreateCustomer(context.Background(), installationInput()); err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	pump, _ := inventory.FindByName(context.Background(), "Submersible Pump HP-2000")
	if pump.Quantity != 4 {
		t.Errorf("pump quantity = %d, want 4 after intake", pump.Quantity)
	}
	starter, _ := inventory.FindByName(context.Background(), "Starter")
	if starter.Quantity != 9 {
		t.Errorf("starter quantity = %d, want 9 after intake", starter.Quantity)
	}
}

func TestCreateCustomerBlockedByStock(t *testing.T) {
	inventory := seedCatalog()
	svc, customers := newTestCustomerService(inventory)

	input := installationInput()
	input.Accessories = []string{"Filter"} // seeded with zero quantity

	_, err := svc.CreateCustomer(context.Background(), input)
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("got code %d, want 422", appErr.Code)
	}
	if len(appErr.Errors) != 1 {
		t.Errorf("got %d field errors, want 1", len(appErr.Errors))
	}
	if len(customers.customers) != 0 {
		t.Error("record was persisted despite the stock violation")
	}
}

func TestCreateCustomerUnknownServiceType(t *testing.T) {
	svc, _ := newTestCustomerService(seedCatalog())

	input := installationInput()
	input.ServiceType = enum.ServiceType("Well Dowsing")

	_, err := svc.CreateCustomer(context.Background(), input)
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadRequest {
		t.Errorf("got code %d, want 400", appErr.Code)
	}
}

func TestQuoteDoesNotPersist(t *testing.T) {
	inventory := seedCatalog()
	svc, customers := newTestCustomerService(inventory)

	bill, err := svc.Quote(context.Background(), installationInput())
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if bill.GrandTotalCents == 0 {
		t.Error("quote has a zero grand total")
	}
	if len(customers.customers) != 0 {
		t.Error("quote persisted a customer record")
	}

	pump, _ := inventory.FindByName(context.Background(), "Submersible Pump HP-2000")
	if pump.Quantity != 5 {
		t.Errorf("quote changed stock: quantity = %d, want 5", pump.Quantity)
	}
}

func TestUpdateCustomerReprices(t *testing.T) {
	svc, _ := newTestCustomerService(seedCatalog())

	customer, err := svc.CreateCustomer(context.Background(), installationInput())
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}
	originalTotal := customer.GrandTotal
	originalWords := customer.AmountInWords

	updated, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		ID:            customer.ID,
		BorewellDepth: intPtr(400),
	})
	if err != nil {
		t.Fatalf("UpdateCustomer() error = %v", err)
	}
	if updated.GrandTotal <= originalTotal {
		t.Errorf("GrandTotal = %d, want more than %d after deepening", updated.GrandTotal, originalTotal)
	}
	if updated.AmountInWords == originalWords {
		t.Error("AmountInWords did not follow the repriced total")
	}
}

func TestUpdateBillingOverride(t *testing.T) {
	svc, _ := newTestCustomerService(seedCatalog())

	customer, err := svc.CreateCustomer(context.Background(), installationInput())
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	updated, err := svc.UpdateBilling(context.Background(), &UpdateBillingInput{
		ID:          customer.ID,
		TotalAmount: 40000, // negotiated down to Rs. 40,000
	})
	if err != nil {
		t.Fatalf("UpdateBilling() error = %v", err)
	}
	if updated.TotalAmount != 4000000 {
		t.Errorf("TotalAmount = %d, want 4000000", updated.TotalAmount)
	}
	if updated.Taxes != 720000 {
		t.Errorf("Taxes = %d, want 720000 (18%% of the override)", updated.Taxes)
	}
	if updated.GrandTotal != 4720000 {
		t.Errorf("GrandTotal = %d, want 4720000", updated.GrandTotal)
	}
	if !strings.Contains(updated.AmountInWords, "Forty Seven Thousand Two Hundred") {
		t.Errorf("AmountInWords = %q, want the overridden total in words", updated.AmountInWords)
	}
}

func TestUpdateBillingRejectsNegative(t *testing.T) {
	svc, _ := newTestCustomerService(seedCatalog())

	customer, err := svc.CreateCustomer(context.Background(), installationInput())
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	_, err = svc.UpdateBilling(context.Background(), &UpdateBillingInput{
		ID:          customer.ID,
		TotalAmount: -1,
	})
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadRequest {
		t.Errorf("got code %d, want 400", appErr.Code)
	}
}
