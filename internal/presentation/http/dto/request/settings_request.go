package request

// UpdateBillTemplateRequest represents a bill template update request
type UpdateBillTemplateRequest struct {
	CompanyName    *string  `json:"company_name" binding:"omitempty,min=2,max=255"`
	CompanyAddress *string  `json:"company_address"`
	CompanyPhone   *string  `json:"company_phone"`
	CompanyEmail   *string  `json:"company_email" binding:"omitempty,email"`
	CompanyWebsite *string  `json:"company_website"`
	Footer         *string  `json:"footer"`
	Terms          []string `json:"terms_and_conditions"`
}
