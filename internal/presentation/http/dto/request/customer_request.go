package request

// CreateCustomerRequest represents a customer intake request
type CreateCustomerRequest struct {
	Name          string   `json:"name" binding:"required,min=2,max=255"`
	Phone         string   `json:"phone" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	ServiceType   string   `json:"service_type" binding:"required"`
	ServiceDate   string   `json:"service_date" binding:"required"` // YYYY-MM-DD
	BorewellDepth *int     `json:"borewell_depth" binding:"omitempty,min=1"`
	PumpType      *string  `json:"pump_type"`
	PumpModel     *string  `json:"pump_model"`
	Accessories   []string `json:"accessories"`
	PaymentStatus *string  `json:"payment_status"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes"`
}

// UpdateCustomerRequest represents a customer update request
type UpdateCustomerRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	ServiceType   *string  `json:"service_type"`
	ServiceDate   *string  `json:"service_date"` // YYYY-MM-DD
	BorewellDepth *int     `json:"borewell_depth" binding:"omitempty,min=1"`
	PumpType      *string  `json:"pump_type"`
	PumpModel     *string  `json:"pump_model"`
	Accessories   []string `json:"accessories"`
	PaymentStatus *string  `json:"payment_status"`
	PaymentMethod *string  `json:"payment_method"`
	Notes         *string  `json:"notes"`
}

// QuoteRequest represents a pricing preview request
type QuoteRequest struct {
	ServiceType   string   `json:"service_type" binding:"required"`
	BorewellDepth *int     `json:"borewell_depth" binding:"omitempty,min=1"`
	PumpType      *string  `json:"pump_type"`
	PumpModel     *string  `json:"pump_model"`
	Accessories   []string `json:"accessories"`
}

// UpdateBillingRequest represents a manual amount override
type UpdateBillingRequest struct {
	TotalAmount float64 `json:"total_amount" binding:"required,min=0"`
}

// SendInvoiceRequest represents an invoice dispatch request
type SendInvoiceRequest struct {
	Channel string `json:"channel" binding:"required,oneof=email whatsapp sms"`
}

// CustomerFilterRequest represents customer list query parameters
type CustomerFilterRequest struct {
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
	Search        string `form:"search"`
	PaymentStatus string `form:"payment_status"`
	ServiceType   string `form:"service_type"`
}
