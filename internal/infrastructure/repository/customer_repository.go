package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	domainRepo "github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByBillID(ctx context.Context, billID string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "bill_id = ?", billID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *domainRepo.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ? OR bill_id ILIKE ?",
			like, like, like, like)
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.ServiceType != nil {
		query = query.Where("service_type = ?", *params.ServiceType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) Recent(ctx context.Context, limit int) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&count).Error
	return count, err
}

func (r *customerRepository) CountByPaymentStatus(ctx context.Context, status enum.PaymentStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("payment_status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *customerRepository) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("COALESCE(SUM(grand_total), 0)")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}
	err := query.Scan(&total).Error
	return total, err
}

func (r *customerRepository) ServiceTypeCounts(ctx context.Context) (map[enum.ServiceType]int64, error) {
	var rows []struct {
		ServiceType enum.ServiceType
		Count       int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("service_type, COUNT(*) as count").
		Group("service_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[enum.ServiceType]int64, len(rows))
	for _, row := range rows {
		counts[row.ServiceType] = row.Count
	}
	return counts, nil
}
