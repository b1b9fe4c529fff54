package invoice

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func testBill() *Bill {
	return &Bill{
		InvoiceNo:          "INV-abc12345",
		Date:               "15/06/2026",
		PaymentStatus:      "Pending",
		Customer:           Party{Name: "Ravi Kumar", Address: "42 Lake Road, Mysuru", Phone: "+91 99887 76655", Email: "ravi@example.com"},
		ServiceType:        "Borewell Installation",
		ServiceDescription: "Depth: 250 ft, Pump: Submersible HP-2000",
		Accessories:        []string{"Control Panel", "Cable"},
		SubtotalCents:      5250000,
		TaxCents:           945000,
		GrandTotalCents:    6195000,
		AmountInWords:      "Sixty One Thousand Nine Hundred Fifty Rupees Only",
		Notes:              "Second service visit scheduled for July.",
		QRCodeURL:          "https://chart.googleapis.com/chart?cht=qr&chs=200x200&chl=%7B%7D",
	}
}

func testTemplate() *Template {
	return &Template{
		CompanyName:    "Borewell Services & Equipment",
		CompanyAddress: "123 Water Street, Groundwater City",
		CompanyPhone:   "+91 98765 43210",
		CompanyEmail:   "info@borewellservices.com",
		CompanyWebsite: "www.borewellservices.com",
		Footer:         "Thank you for your business!",
		Terms: []string{
			"Payment is due within 15 days of invoice date.",
			"Warranty period for pump equipment is 12 months from date of installation.",
		},
	}
}

func TestBuildProducesPDF(t *testing.T) {
	doc, err := Build(testBill(), testTemplate())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(doc.Bytes()) == 0 {
		t.Fatal("Build produced an empty document")
	}
	if !bytes.HasPrefix(doc.Bytes(), []byte("%PDF")) {
		t.Errorf("document does not start with a PDF header: %q", doc.Bytes()[:8])
	}
}

func TestFileAndStreamOutputIdentical(t *testing.T) {
	doc, err := Build(testBill(), testTemplate())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "Invoice-abc12345.pdf")
	if err := doc.WriteFile(path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	fromFile, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported file: %v", err)
	}

	var stream bytes.Buffer
	if err := doc.Output(&stream); err != nil {
		t.Fatalf("Output returned error: %v", err)
	}

	if !bytes.Equal(fromFile, stream.Bytes()) {
		t.Error("persisted file and in-memory stream differ")
	}
}

func TestBuildFailsFast(t *testing.T) {
	tpl := testTemplate()

	noName := testBill()
	noName.Customer.Name = ""
	if _, err := Build(noName, tpl); err == nil {
		t.Error("Build should fail when customer name is missing")
	}

	noInvoiceNo := testBill()
	noInvoiceNo.InvoiceNo = ""
	if _, err := Build(noInvoiceNo, tpl); err == nil {
		t.Error("Build should fail when invoice number is missing")
	}

	if _, err := Build(nil, tpl); err == nil {
		t.Error("Build should fail on nil bill")
	}

	blankCompany := testTemplate()
	blankCompany.CompanyName = ""
	if _, err := Build(testBill(), blankCompany); err == nil {
		t.Error("Build should fail when template company name is missing")
	}
}

func TestBuildOmitsOptionalBlocks(t *testing.T) {
	bill := testBill()
	bill.Notes = ""
	bill.Accessories = nil
	bill.QRCodeURL = ""

	doc, err := Build(bill, testTemplate())
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if len(doc.Bytes()) == 0 {
		t.Fatal("Build produced an empty document")
	}
}
