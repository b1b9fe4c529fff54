package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillTemplate holds the company identity and invoice boilerplate. One
// row exists per installation; every invoice build reads it and the
// admin settings endpoint is its only writer.
type BillTemplate struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompanyName    string    `gorm:"size:255;not null" json:"company_name"`
	CompanyAddress string    `gorm:"type:text" json:"company_address"`
	CompanyPhone   string    `gorm:"size:50" json:"company_phone"`
	CompanyEmail   string    `gorm:"size:255" json:"company_email"`
	CompanyWebsite string    `gorm:"size:255" json:"company_website"`
	Footer         string    `gorm:"type:text" json:"footer"`
	Terms          []string  `gorm:"serializer:json" json:"terms_and_conditions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the template row
func (t *BillTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillTemplate model
func (BillTemplate) TableName() string {
	return "bill_templates"
}

// DefaultBillTemplate returns the template seeded at first start.
func DefaultBillTemplate() *BillTemplate {
	return &BillTemplate{
		CompanyName:    "Borewell Services & Equipment",
		CompanyAddress: "123 Water Street, Groundwater City",
		CompanyPhone:   "+91 98765 43210",
		CompanyEmail:   "info@borewellservices.com",
		CompanyWebsite: "www.borewellservices.com",
		Footer:         "Thank you for your business!",
		Terms: []string{
			"Payment is due within 15 days of invoice date.",
			"Warranty period for pump equipment is 12 months from date of installation.",
			"Service warranty is valid for 90 days.",
		},
	}
}
