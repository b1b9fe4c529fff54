package service

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/domain/enum"
	domainRepo "github.com/aquadrill/borewell-api/internal/domain/repository"
	"github.com/aquadrill/borewell-api/pkg/apperror"
	"github.com/aquadrill/borewell-api/pkg/messaging"
	"github.com/google/uuid"
)

// fakeCustomerRepo is an in-memory CustomerRepository for service tests
type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) GetByBillID(_ context.Context, billID string) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].BillID == billID {
			c := f.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i := range f.customers {
		if f.customers[i].ID == customer.ID {
			f.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.customers {
		if f.customers[i].ID == id {
			f.customers = append(f.customers[:i], f.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, _ *domainRepo.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return f.customers, int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) Recent(_ context.Context, limit int) ([]entity.Customer, error) {
	if limit > len(f.customers) {
		limit = len(f.customers)
	}
	return f.customers[:limit], nil
}

func (f *fakeCustomerRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.customers)), nil
}

func (f *fakeCustomerRepo) CountByPaymentStatus(_ context.Context, status enum.PaymentStatus) (int64, error) {
	var count int64
	for _, c := range f.customers {
		if c.PaymentStatus == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeCustomerRepo) RevenueSince(_ context.Context, since time.Time) (int64, error) {
	var total int64
	for _, c := range f.customers {
		if since.IsZero() || !c.CreatedAt.Before(since) {
			total += c.GrandTotal
		}
	}
	return total, nil
}

func (f *fakeCustomerRepo) ServiceTypeCounts(_ context.Context) (map[enum.ServiceType]int64, error) {
	counts := make(map[enum.ServiceType]int64)
	for _, c := range f.customers {
		counts[c.ServiceType]++
	}
	return counts, nil
}

// fakeSettingsRepo returns a fixed template
type fakeSettingsRepo struct {
	template *entity.BillTemplate
}

func (f *fakeSettingsRepo) GetBillTemplate(_ context.Context) (*entity.BillTemplate, error) {
	return f.template, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, template *entity.BillTemplate) error {
	f.template = template
	return nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, template *entity.BillTemplate) error {
	f.template = template
	return nil
}

// fakeGateway records deliveries and can be told to fail
type fakeGateway struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeGateway) Send(_ context.Context, msg *messaging.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testCustomer() entity.Customer {
	email := "ramesh@example.com"
	return entity.Customer{
		ID:            uuid.New(),
		Name:          "Ramesh Kumar",
		Phone:         "+91 98765 12345",
		Address:       "45 Lake View Road, Coimbatore",
		Email:         &email,
		ServiceType:   enum.ServiceBorewellInstallation,
		ServiceDate:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		TotalAmount:   2500000,
		Taxes:         450000,
		GrandTotal:    2950000,
		PaymentStatus: enum.PaymentStatusPending,
		BillID:        "BW-48213-7731",
		AmountInWords: "Twenty Nine Thousand Five Hundred Rupees Only",
		QRCodeURL:     "https://chart.googleapis.com/chart?cht=qr&chs=200x200&chl=%7B%7D",
	}
}

func newTestInvoiceService(customer entity.Customer, gateways map[messaging.Channel]messaging.Gateway, storagePath string) *InvoiceService {
	return NewInvoiceService(
		&fakeCustomerRepo{customers: []entity.Customer{customer}},
		&fakeSettingsRepo{template: entity.DefaultBillTemplate()},
		gateways,
		&config.StorageConfig{Path: storagePath},
		&config.BillingConfig{DispatchTimeout: 5 * time.Second},
	)
}

func TestBuildInvoiceProducesPDF(t *testing.T) {
	customer := testCustomer()
	svc := newTestInvoiceService(customer, nil, t.TempDir())

	doc, got, err := svc.BuildInvoice(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("BuildInvoice() error = %v", err)
	}
	if !bytes.HasPrefix(doc.Bytes(), []byte("%PDF")) {
		t.Error("document does not start with a PDF header")
	}
	if got.ID != customer.ID {
		t.Errorf("returned customer %s, want %s", got.ID, customer.ID)
	}
}

func TestBuildInvoiceUnknownCustomer(t *testing.T) {
	svc := newTestInvoiceService(testCustomer(), nil, t.TempDir())

	_, _, err := svc.BuildInvoice(context.Background(), uuid.New())
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusNotFound {
		t.Errorf("got code %d, want 404", appErr.Code)
	}
}

func TestExportInvoiceWritesFile(t *testing.T) {
	customer := testCustomer()
	dir := t.TempDir()
	svc := newTestInvoiceService(customer, nil, dir)

	path, err := svc.ExportInvoice(context.Background(), customer.ID)
	if err != nil {
		t.Fatalf("ExportInvoice() error = %v", err)
	}
	if filepath.Base(path) != "Invoice-"+customer.ID.String()+".pdf" {
		t.Errorf("exported path = %q, want the Invoice-<id>.pdf naming", path)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}
	if !bytes.HasPrefix(onDisk, []byte("%PDF")) {
		t.Error("exported file does not start with a PDF header")
	}
}

func TestDispatchEmail(t *testing.T) {
	customer := testCustomer()
	gateway := &fakeGateway{}
	svc := newTestInvoiceService(customer, map[messaging.Channel]messaging.Gateway{
		messaging.ChannelEmail: gateway,
	}, t.TempDir())

	err := svc.Dispatch(context.Background(), &DispatchInput{
		CustomerID: customer.ID,
		Channel:    messaging.ChannelEmail,
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if len(gateway.sent) != 1 {
		t.Fatalf("gateway received %d messages, want 1", len(gateway.sent))
	}
	msg := gateway.sent[0]
	if msg.Recipient != *customer.Email {
		t.Errorf("recipient = %q, want customer email", msg.Recipient)
	}
	if len(msg.Attachment) == 0 {
		t.Error("message has no PDF attachment")
	}
}

func TestDispatchPreconditionsSkipGateway(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *entity.Customer)
		channel messaging.Channel
	}{
		{"email without address", func(c *entity.Customer) { c.Email = nil }, messaging.ChannelEmail},
		{"whatsapp without phone", func(c *entity.Customer) { c.Phone = "" }, messaging.ChannelWhatsApp},
		{"sms without phone", func(c *entity.Customer) { c.Phone = "" }, messaging.ChannelSMS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := testCustomer()
			tt.mutate(&customer)

			gateway := &fakeGateway{}
			svc := newTestInvoiceService(customer, map[messaging.Channel]messaging.Gateway{
				messaging.ChannelEmail:    gateway,
				messaging.ChannelWhatsApp: gateway,
				messaging.ChannelSMS:      gateway,
			}, t.TempDir())

			err := svc.Dispatch(context.Background(), &DispatchInput{
				CustomerID: customer.ID,
				Channel:    tt.channel,
			})
			if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadRequest {
				t.Errorf("got code %d, want 400", appErr.Code)
			}
			if len(gateway.sent) != 0 {
				t.Error("gateway was invoked despite a failed precondition")
			}
		})
	}
}

func TestDispatchGatewayFailure(t *testing.T) {
	customer := testCustomer()
	gateway := &fakeGateway{err: errors.New("provider down")}
	svc := newTestInvoiceService(customer, map[messaging.Channel]messaging.Gateway{
		messaging.ChannelEmail: gateway,
	}, t.TempDir())

	err := svc.Dispatch(context.Background(), &DispatchInput{
		CustomerID: customer.ID,
		Channel:    messaging.ChannelEmail,
	})
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadGateway {
		t.Errorf("got code %d, want 502", appErr.Code)
	}
}

func TestDispatchUnknownChannel(t *testing.T) {
	customer := testCustomer()
	svc := newTestInvoiceService(customer, nil, t.TempDir())

	err := svc.Dispatch(context.Background(), &DispatchInput{
		CustomerID: customer.ID,
		Channel:    messaging.Channel("carrier-pigeon"),
	})
	if appErr := apperror.GetAppError(err); appErr.Code != http.StatusBadRequest {
		t.Errorf("got code %d, want 400", appErr.Code)
	}
}
