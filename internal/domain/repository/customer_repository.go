package repository

import (
	"context"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerFilterParams narrows customer list queries
type CustomerFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	ServiceType   *enum.ServiceType
}

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByBillID(ctx context.Context, billID string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
	// Recent returns the newest records for the dashboard
	Recent(ctx context.Context, limit int) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
	CountByPaymentStatus(ctx context.Context, status enum.PaymentStatus) (int64, error)
	// RevenueSince sums grand totals (in paise) of records created at or
	// after since; pass the zero time for the all-time total.
	RevenueSince(ctx context.Context, since time.Time) (int64, error)
	// ServiceTypeCounts returns the number of records per service type
	ServiceTypeCounts(ctx context.Context) (map[enum.ServiceType]int64, error)
}
