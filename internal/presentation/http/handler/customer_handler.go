package handler

import (
	"net/http"
	"time"

	"github.com/aquadrill/borewell-api/internal/application/service"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/request"
	"github.com/aquadrill/borewell-api/internal/presentation/http/dto/response"
	"github.com/aquadrill/borewell-api/pkg/messaging"
	"github.com/aquadrill/borewell-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler handles customer and service job HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	invoiceService  *service.InvoiceService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, invoiceService *service.InvoiceService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		invoiceService:  invoiceService,
	}
}

const serviceDateLayout = "2006-01-02"

// parsePaymentStatus maps the wire names onto the enum
func parsePaymentStatus(s string) (enum.PaymentStatus, bool) {
	switch s {
	case "Pending":
		return enum.PaymentStatusPending, true
	case "Paid":
		return enum.PaymentStatusPaid, true
	case "Partially Paid", "PartiallyPaid":
		return enum.PaymentStatusPartiallyPaid, true
	}
	return enum.PaymentStatusPending, false
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	var filter request.CustomerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.CustomerFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.PaymentStatus != "" {
		status, ok := parsePaymentStatus(filter.PaymentStatus)
		if !ok {
			response.BadRequest(c, "Invalid payment status filter")
			return
		}
		params.PaymentStatus = &status
	}
	if filter.ServiceType != "" {
		serviceType := enum.ServiceType(filter.ServiceType)
		params.ServiceType = &serviceType
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles customer intake
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	serviceDate, err := time.Parse(serviceDateLayout, req.ServiceDate)
	if err != nil {
		response.BadRequest(c, "Invalid service date, expected YYYY-MM-DD")
		return
	}

	input := &service.CreateCustomerInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Email:         req.Email,
		ServiceType:   enum.ServiceType(req.ServiceType),
		ServiceDate:   serviceDate,
		BorewellDepth: req.BorewellDepth,
		PumpType:      req.PumpType,
		PumpModel:     req.PumpModel,
		Accessories:   req.Accessories,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.PaymentStatus != nil {
		status, ok := parsePaymentStatus(*req.PaymentStatus)
		if !ok {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		input.PaymentStatus = status
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Quote handles pricing previews
func (h *CustomerHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bill, err := h.customerService.Quote(c.Request.Context(), &service.CreateCustomerInput{
		ServiceType:   enum.ServiceType(req.ServiceType),
		BorewellDepth: req.BorewellDepth,
		PumpType:      req.PumpType,
		PumpModel:     req.PumpModel,
		Accessories:   req.Accessories,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	lines := make([]gin.H, 0, len(bill.Lines))
	for _, line := range bill.Lines {
		lines = append(lines, gin.H{
			"description": line.Description,
			"amount":      float64(line.AmountCents) / 100,
		})
	}

	response.OK(c, "Quote computed", gin.H{
		"lines":        lines,
		"total_amount": float64(bill.SubtotalCents) / 100,
		"taxes":        float64(bill.TaxCents) / 100,
		"grand_total":  float64(bill.GrandTotalCents) / 100,
	})
}

// Get handles retrieving a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCustomerInput{
		ID:            id,
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Email:         req.Email,
		BorewellDepth: req.BorewellDepth,
		PumpType:      req.PumpType,
		PumpModel:     req.PumpModel,
		Accessories:   req.Accessories,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.ServiceType != nil {
		serviceType := enum.ServiceType(*req.ServiceType)
		input.ServiceType = &serviceType
	}
	if req.ServiceDate != nil {
		serviceDate, err := time.Parse(serviceDateLayout, *req.ServiceDate)
		if err != nil {
			response.BadRequest(c, "Invalid service date, expected YYYY-MM-DD")
			return
		}
		input.ServiceDate = &serviceDate
	}
	if req.PaymentStatus != nil {
		status, ok := parsePaymentStatus(*req.PaymentStatus)
		if !ok {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		input.PaymentStatus = &status
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// UpdateBilling handles a manual amount override
func (h *CustomerHandler) UpdateBilling(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateBillingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateBilling(c.Request.Context(), &service.UpdateBillingInput{
		ID:          id,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Billing updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Invoice streams the PDF invoice for a customer
func (h *CustomerHandler) Invoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	doc, customer, err := h.invoiceService.BuildInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="Invoice-`+customer.ID.String()+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc.Bytes())
}

// ExportInvoice writes the PDF to server storage and returns the path
func (h *CustomerHandler) ExportInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	path, err := h.invoiceService.ExportInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice exported successfully", gin.H{"path": path})
}

// SendInvoice dispatches the invoice over email, WhatsApp, or SMS
func (h *CustomerHandler) SendInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err = h.invoiceService.Dispatch(c.Request.Context(), &service.DispatchInput{
		CustomerID: id,
		Channel:    messaging.Channel(req.Channel),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice sent successfully", gin.H{"channel": req.Channel})
}
