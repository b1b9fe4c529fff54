package entity

import (
	"encoding/json"
	"time"

	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is one customer together with their service job and billing
// record. The business bills per job, so the record carries both.
type Customer struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Phone   string    `gorm:"size:50;not null" json:"phone"`
	Address string    `gorm:"type:text;not null" json:"address"`
	Email   *string   `gorm:"size:255" json:"email,omitempty"`

	ServiceType   enum.ServiceType `gorm:"size:100;not null" json:"service_type"`
	ServiceDate   time.Time        `gorm:"type:date;not null" json:"service_date"`
	BorewellDepth *int             `json:"borewell_depth,omitempty"` // feet, installation jobs only
	PumpType      *string          `gorm:"size:100" json:"pump_type,omitempty"`
	PumpModel     *string          `gorm:"size:100" json:"pump_model,omitempty"`
	Accessories   []string         `gorm:"serializer:json" json:"accessories,omitempty"`

	TotalAmount   int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	Taxes         int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	GrandTotal    int64              `gorm:"default:0" json:"-"` // Stored in paise, excluded from JSON
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	PaymentMethod *string            `gorm:"size:50" json:"payment_method,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`

	BillID        string `gorm:"size:50;unique;not null" json:"bill_id"`
	AmountInWords string `gorm:"type:text" json:"amount_in_words"`
	QRCodeURL     string `gorm:"type:text" json:"qr_code_url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON custom marshaler to convert paise to decimal for API responses
func (c Customer) MarshalJSON() ([]byte, error) {
	type Alias Customer
	return json.Marshal(&struct {
		Alias
		TotalAmount float64 `json:"total_amount"`
		Taxes       float64 `json:"taxes"`
		GrandTotal  float64 `json:"grand_total"`
	}{
		Alias:       Alias(c),
		TotalAmount: float64(c.TotalAmount) / 100,
		Taxes:       float64(c.Taxes) / 100,
		GrandTotal:  float64(c.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// GetTotalAmountDecimal returns the pre-tax amount as a decimal
func (c *Customer) GetTotalAmountDecimal() float64 {
	return float64(c.TotalAmount) / 100
}

// GetGrandTotalDecimal returns the grand total as a decimal
func (c *Customer) GetGrandTotalDecimal() float64 {
	return float64(c.GrandTotal) / 100
}

// InvoiceNo derives the human-facing invoice number from the customer ID
func (c *Customer) InvoiceNo() string {
	return "INV-" + c.ID.String()[:8]
}
