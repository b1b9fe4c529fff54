package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	domainRepo "github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/google/uuid"
)

// fakeInventoryRepo is an in-memory InventoryRepository for service tests
type fakeInventoryRepo struct {
	items []entity.InventoryItem
}

func (f *fakeInventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) FindByName(_ context.Context, name string) (*entity.InventoryItem, error) {
	for i := range f.items {
		if strings.EqualFold(f.items[i].Name, name) {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) FindPump(_ context.Context, pumpType, pumpModel string) (*entity.InventoryItem, error) {
	for i := range f.items {
		name := strings.ToLower(f.items[i].Name)
		if strings.Contains(name, strings.ToLower(pumpType)) &&
			(pumpModel == "" || strings.Contains(name, strings.ToLower(pumpModel))) {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) List(_ context.Context, _ *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	return f.items, int64(len(f.items)), nil
}

func (f *fakeInventoryRepo) ListLowStock(_ context.Context) ([]entity.InventoryItem, error) {
	var low []entity.InventoryItem
	for _, item := range f.items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low, nil
}

func (f *fakeInventoryRepo) DecrementStock(_ context.Context, id uuid.UUID, by int) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].Quantity >= by {
			f.items[i].Quantity -= by
			return nil
		}
	}
	return context.Canceled // unused in these tests
}

func (f *fakeInventoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeInventoryRepo) CountLowStock(_ context.Context) (int64, error) {
	low, _ := f.ListLowStock(context.Background())
	return int64(len(low)), nil
}

func testBillingConfig() *config.BillingConfig {
	return &config.BillingConfig{
		TaxRate:           0.18,
		DepthRateCents:    15000,  // Rs. 150 per foot
		FallbackItemCents: 100000, // Rs. 1000
		BillPrefix:        "BW",
	}
}

func seedCatalog() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: []entity.InventoryItem{
		{ID: uuid.New(), Name: "Submersible Pump HP-2000", Category: enum.ItemCategoryPump, Quantity: 5, Price: 1500000, ReorderLevel: 2},
		{ID: uuid.New(), Name: "Starter", Category: enum.ItemCategoryAccessory, Quantity: 10, Price: 120000, ReorderLevel: 3},
		{ID: uuid.New(), Name: "Filter", Category: enum.ItemCategoryAccessory, Quantity: 0, Price: 45000, ReorderLevel: 5},
	}}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestComputeBillInstallation(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType:   enum.ServiceBorewellInstallation,
		BorewellDepth: intPtr(200),
		PumpType:      strPtr("Submersible"),
		PumpModel:     strPtr("HP-2000"),
		Accessories:   []string{"Starter"},
	}

	bill, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}

	// pump 15000.00 + starter 1200.00 + 200ft * 150.00 = 46200.00
	wantSubtotal := int64(1500000 + 120000 + 200*15000)
	if bill.SubtotalCents != wantSubtotal {
		t.Errorf("SubtotalCents = %d, want %d", bill.SubtotalCents, wantSubtotal)
	}
	wantTax := int64(831600) // 18% of 46200.00
	if bill.TaxCents != wantTax {
		t.Errorf("TaxCents = %d, want %d", bill.TaxCents, wantTax)
	}
	if bill.GrandTotalCents != wantSubtotal+wantTax {
		t.Errorf("GrandTotalCents = %d, want %d", bill.GrandTotalCents, wantSubtotal+wantTax)
	}
	if len(bill.Lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(bill.Lines))
	}
	if bill.Lines[0].Description != "Submersible Pump HP-2000" {
		t.Errorf("pump line = %q, want catalog name", bill.Lines[0].Description)
	}
}

func TestComputeBillIgnoresDepthForRepairs(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType:   enum.ServicePumpRepair,
		BorewellDepth: intPtr(300),
		Accessories:   []string{"Starter"},
	}

	bill, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if bill.SubtotalCents != 120000 {
		t.Errorf("SubtotalCents = %d, want 120000 (no drilling charge)", bill.SubtotalCents)
	}
}

func TestComputeBillFallbackPricing(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServicePumpInstallation,
		PumpType:    strPtr("Jet"),
		PumpModel:   strPtr("JX-99"),
		Accessories: []string{"Custom Bracket"},
	}

	bill, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	// neither item is in the catalog, both price at the fallback
	if bill.SubtotalCents != 200000 {
		t.Errorf("SubtotalCents = %d, want 200000", bill.SubtotalCents)
	}
	if bill.Lines[0].Description != "Jet JX-99" {
		t.Errorf("pump line = %q, want composed type+model", bill.Lines[0].Description)
	}
}

func TestComputeBillSkipsNonePump(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServiceMaintenance,
		PumpType:    strPtr("None"),
	}

	bill, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if bill.SubtotalCents != 0 {
		t.Errorf("SubtotalCents = %d, want 0 for the explicit no-pump choice", bill.SubtotalCents)
	}
	if len(bill.Lines) != 0 {
		t.Errorf("got %d lines, want none: %+v", len(bill.Lines), bill.Lines)
	}
}

func TestComputeBillIdempotent(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType:   enum.ServiceBorewellInstallation,
		BorewellDepth: intPtr(150),
		PumpType:      strPtr("Submersible"),
		Accessories:   []string{"Starter", "Starter"},
	}

	first, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	second, err := svc.ComputeBill(context.Background(), input)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if first.GrandTotalCents != second.GrandTotalCents {
		t.Errorf("recompute changed the total: %d vs %d", first.GrandTotalCents, second.GrandTotalCents)
	}
}

func TestValidateStockReportsAllViolations(t *testing.T) {
	repo := seedCatalog()
	// drain the pump as well so two violations exist at once
	repo.items[0].Quantity = 0
	svc := NewBillingService(repo, testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServiceBorewellInstallation,
		PumpType:    strPtr("Submersible"),
		PumpModel:   strPtr("HP-2000"),
		Accessories: []string{"Filter", "Starter"},
	}

	resolved, violations, err := svc.ValidateStock(context.Background(), input)
	if err != nil {
		t.Fatalf("ValidateStock() error = %v", err)
	}
	if len(violations) != 2 {
		t.Fatalf("got %d violations, want 2: %+v", len(violations), violations)
	}
	if len(resolved) != 1 || resolved[0].Name != "Starter" {
		t.Errorf("resolved = %+v, want only the in-stock Starter", resolved)
	}
}

func TestValidateStockSkipsUnknownAccessories(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServiceMaintenance,
		Accessories: []string{"Custom Bracket"},
	}

	resolved, violations, err := svc.ValidateStock(context.Background(), input)
	if err != nil {
		t.Fatalf("ValidateStock() error = %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("unknown accessory produced violations: %+v", violations)
	}
	if len(resolved) != 0 {
		t.Errorf("unknown accessory produced stock lines: %+v", resolved)
	}
}

func TestValidateStockSkipsNonePump(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServiceMaintenance,
		PumpType:    strPtr("None"),
		Accessories: []string{"Starter"},
	}

	resolved, violations, err := svc.ValidateStock(context.Background(), input)
	if err != nil {
		t.Fatalf("ValidateStock() error = %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("the no-pump choice produced violations: %+v", violations)
	}
	if len(resolved) != 1 || resolved[0].Name != "Starter" {
		t.Errorf("resolved = %+v, want only the Starter", resolved)
	}
}

func TestValidateStockRequiresCatalogedPump(t *testing.T) {
	svc := NewBillingService(seedCatalog(), testBillingConfig())

	input := &BillInput{
		ServiceType: enum.ServicePumpInstallation,
		PumpType:    strPtr("Jet"),
		PumpModel:   strPtr("JX-99"),
	}

	_, violations, err := svc.ValidateStock(context.Background(), input)
	if err != nil {
		t.Fatalf("ValidateStock() error = %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("got %d violations, want 1 for the uncataloged pump", len(violations))
	}
	if violations[0].Field != "pump_model" {
		t.Errorf("violation field = %q, want pump_model", violations[0].Field)
	}
}
