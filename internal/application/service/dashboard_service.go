package service

import (
	"context"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the landing screen
type DashboardService struct {
	customerRepo  repository.CustomerRepository
	inventoryRepo repository.InventoryRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(customerRepo repository.CustomerRepository, inventoryRepo repository.InventoryRepository) *DashboardService {
	return &DashboardService{customerRepo: customerRepo, inventoryRepo: inventoryRepo}
}

// DashboardStats is the aggregated dashboard payload
type DashboardStats struct {
	TotalCustomers    int64                      `json:"total_customers"`
	PendingPayments   int64                      `json:"pending_payments"`
	TotalRevenue      float64                    `json:"total_revenue"`
	MonthlyRevenue    float64                    `json:"monthly_revenue"`
	InventoryItems    int64                      `json:"inventory_items"`
	LowStockItems     int64                      `json:"low_stock_items"`
	ServiceTypeCounts map[enum.ServiceType]int64 `json:"service_type_counts"`
	RecentCustomers   []entity.Customer          `json:"recent_customers"`
}

// GetStats collects the dashboard aggregates. Revenue figures come back
// as decimals; monthly revenue covers the current calendar month.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}

	pending, err := s.customerRepo.CountByPaymentStatus(ctx, enum.PaymentStatusPending)
	if err != nil {
		return nil, err
	}
	partial, err := s.customerRepo.CountByPaymentStatus(ctx, enum.PaymentStatusPartiallyPaid)
	if err != nil {
		return nil, err
	}
	stats.PendingPayments = pending + partial

	total, err := s.customerRepo.RevenueSince(ctx, time.Time{})
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = float64(total) / 100

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, err := s.customerRepo.RevenueSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = float64(monthly) / 100

	if stats.InventoryItems, err = s.inventoryRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.LowStockItems, err = s.inventoryRepo.CountLowStock(ctx); err != nil {
		return nil, err
	}
	if stats.ServiceTypeCounts, err = s.customerRepo.ServiceTypeCounts(ctx); err != nil {
		return nil, err
	}
	if stats.RecentCustomers, err = s.customerRepo.Recent(ctx, 5); err != nil {
		return nil, err
	}
	if stats.RecentCustomers == nil {
		stats.RecentCustomers = []entity.Customer{}
	}

	return stats, nil
}
