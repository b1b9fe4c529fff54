package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/aquadrill/borewell-api/pkg/invoice"
	"github.com/aquadrill/borewell-api/pkg/messaging"
	"github.com/google/uuid"
)

// InvoiceService renders invoices and sends them out
type InvoiceService struct {
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	gateways     map[messaging.Channel]messaging.Gateway
	storagePath  string
	timeout      time.Duration
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	gateways map[messaging.Channel]messaging.Gateway,
	storage *config.StorageConfig,
	billing *config.BillingConfig,
) *InvoiceService {
	return &InvoiceService{
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		gateways:     gateways,
		storagePath:  storage.Path,
		timeout:      billing.DispatchTimeout,
	}
}

// BuildInvoice renders the PDF invoice for a customer
func (s *InvoiceService) BuildInvoice(ctx context.Context, customerID uuid.UUID) (*invoice.Document, *entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	if customer == nil {
		return nil, nil, apperror.NewNotFoundError("Customer")
	}

	template, err := s.settingsRepo.GetBillTemplate(ctx)
	if err != nil {
		return nil, nil, err
	}
	if template == nil {
		template = entity.DefaultBillTemplate()
	}

	doc, err := invoice.Build(billFromCustomer(customer), templateFromEntity(template))
	if err != nil {
		return nil, nil, err
	}
	return doc, customer, nil
}

// ExportInvoice renders the invoice and writes it to the storage
// directory, returning the absolute file path.
func (s *InvoiceService) ExportInvoice(ctx context.Context, customerID uuid.UUID) (string, error) {
	doc, customer, err := s.BuildInvoice(ctx, customerID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.storagePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := filepath.Join(s.storagePath, invoiceFileName(customer))
	if err := doc.WriteFile(path); err != nil {
		return "", fmt.Errorf("failed to write invoice: %w", err)
	}
	return path, nil
}

// DispatchInput represents the send invoice input
type DispatchInput struct {
	CustomerID uuid.UUID
	Channel    messaging.Channel
}

// Dispatch renders the invoice and sends it over the requested channel.
// Channel preconditions are checked before the gateway is touched: an
// email dispatch needs the customer's email on file, WhatsApp and SMS
// need a phone number. A precondition failure is the caller's problem
// (400); a gateway failure is the provider's (502).
func (s *InvoiceService) Dispatch(ctx context.Context, input *DispatchInput) error {
	if !input.Channel.Valid() {
		return apperror.NewBadRequestError("Unknown dispatch channel: " + string(input.Channel))
	}

	doc, customer, err := s.BuildInvoice(ctx, input.CustomerID)
	if err != nil {
		return err
	}

	recipient, err := dispatchRecipient(customer, input.Channel)
	if err != nil {
		return err
	}

	gateway, ok := s.gateways[input.Channel]
	if !ok {
		return apperror.NewBadRequestError("Dispatch channel not configured: " + string(input.Channel))
	}

	msg := &messaging.Message{
		Recipient:      recipient,
		Subject:        "Invoice " + customer.InvoiceNo() + " from Borewell Services",
		Body:           dispatchBody(customer),
		AttachmentName: invoiceFileName(customer),
		Attachment:     doc.Bytes(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := gateway.Send(ctx, msg); err != nil {
		return apperror.NewDispatchError(fmt.Sprintf("Failed to send invoice via %s: %v", input.Channel, err))
	}
	return nil
}

// dispatchRecipient resolves the destination address for a channel,
// failing when the customer record lacks the required contact field.
func dispatchRecipient(customer *entity.Customer, channel messaging.Channel) (string, error) {
	switch channel {
	case messaging.ChannelEmail:
		if customer.Email == nil || *customer.Email == "" {
			return "", apperror.NewBadRequestError("Customer has no email address on file")
		}
		return *customer.Email, nil
	case messaging.ChannelWhatsApp, messaging.ChannelSMS:
		if customer.Phone == "" {
			return "", apperror.NewBadRequestError("Customer has no phone number on file")
		}
		return customer.Phone, nil
	}
	return "", apperror.NewBadRequestError("Unknown dispatch channel: " + string(channel))
}

func dispatchBody(customer *entity.Customer) string {
	return fmt.Sprintf(
		"Dear %s,\n\nPlease find attached invoice %s for %s.\nAmount due: %s.\n\nThank you for your business.",
		customer.Name, customer.InvoiceNo(), customer.ServiceType,
		invoice.FormatINR(customer.GrandTotal),
	)
}

func invoiceFileName(customer *entity.Customer) string {
	return "Invoice-" + customer.ID.String() + ".pdf"
}

func billFromCustomer(customer *entity.Customer) *invoice.Bill {
	bill := &invoice.Bill{
		InvoiceNo:     customer.InvoiceNo(),
		Date:          customer.ServiceDate.Format("02 Jan 2006"),
		PaymentStatus: customer.PaymentStatus.String(),
		Customer: invoice.Party{
			Name:    customer.Name,
			Address: customer.Address,
			Phone:   customer.Phone,
		},
		ServiceType:        string(customer.ServiceType),
		ServiceDescription: serviceDescription(customer),
		Accessories:        customer.Accessories,
		SubtotalCents:      customer.TotalAmount,
		TaxCents:           customer.Taxes,
		GrandTotalCents:    customer.GrandTotal,
		AmountInWords:      customer.AmountInWords,
		QRCodeURL:          customer.QRCodeURL,
	}
	if customer.Email != nil {
		bill.Customer.Email = *customer.Email
	}
	if customer.Notes != nil {
		bill.Notes = *customer.Notes
	}
	return bill
}

// serviceDescription summarizes the job for the invoice line item
func serviceDescription(customer *entity.Customer) string {
	var parts []string
	if pumpSelected(customer.PumpType) {
		pump := *customer.PumpType
		if customer.PumpModel != nil && *customer.PumpModel != "" {
			pump = pump + " " + *customer.PumpModel
		}
		parts = append(parts, pump)
	}
	if customer.BorewellDepth != nil && *customer.BorewellDepth > 0 {
		parts = append(parts, fmt.Sprintf("%d ft", *customer.BorewellDepth))
	}
	return strings.Join(parts, ", ")
}

func templateFromEntity(t *entity.BillTemplate) *invoice.Template {
	return &invoice.Template{
		CompanyName:    t.CompanyName,
		CompanyAddress: t.CompanyAddress,
		CompanyPhone:   t.CompanyPhone,
		CompanyEmail:   t.CompanyEmail,
		CompanyWebsite: t.CompanyWebsite,
		Footer:         t.Footer,
		Terms:          t.Terms,
	}
}
