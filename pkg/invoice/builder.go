// Package invoice builds the customer-facing PDF invoice and its
// supporting artifacts (bill IDs, QR verification payloads, currency
// formatting).
package invoice

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// Party identifies the billed customer on the invoice.
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Bill carries everything the document needs for one invoice.
type Bill struct {
	InvoiceNo     string
	Date          string
	PaymentStatus string

	Customer Party

	ServiceType        string
	ServiceDescription string
	Accessories        []string

	SubtotalCents   int64
	TaxCents        int64
	GrandTotalCents int64
	AmountInWords   string

	Notes     string
	QRCodeURL string
}

// Template holds the company identity and boilerplate applied to every
// invoice. It is read from settings and passed in explicitly per build.
type Template struct {
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyWebsite string
	Footer         string
	Terms          []string
}

// Document is a fully rendered invoice. The bytes are produced once so
// file export and in-memory streaming emit identical content.
type Document struct {
	data []byte
}

// Bytes returns the raw PDF bytes.
func (d *Document) Bytes() []byte {
	return d.data
}

// Output streams the PDF to w.
func (d *Document) Output(w io.Writer) error {
	_, err := w.Write(d.data)
	return err
}

// WriteFile persists the PDF at path.
func (d *Document) WriteFile(path string) error {
	return os.WriteFile(path, d.data, 0o644)
}

// Build renders the invoice. It fails fast on missing required fields
// rather than emitting a partial document.
func Build(bill *Bill, tpl *Template) (*Document, error) {
	if bill == nil || tpl == nil {
		return nil, fmt.Errorf("invoice: bill and template are required")
	}
	if bill.Customer.Name == "" {
		return nil, fmt.Errorf("invoice %s: customer name is required", bill.InvoiceNo)
	}
	if bill.InvoiceNo == "" {
		return nil, fmt.Errorf("invoice: invoice number is required")
	}
	if tpl.CompanyName == "" {
		return nil, fmt.Errorf("invoice %s: template company name is required", bill.InvoiceNo)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	pageWidth, pageHeight := pdf.GetPageSize()

	// Company header, centered.
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 84, 147)
	pdf.SetY(14)
	pdf.CellFormat(0, 8, tpl.CompanyName, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 5, tpl.CompanyAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Phone: %s | Email: %s", tpl.CompanyPhone, tpl.CompanyEmail), "", 1, "C", false, 0, "")
	if tpl.CompanyWebsite != "" {
		pdf.CellFormat(0, 5, fmt.Sprintf("Website: %s", tpl.CompanyWebsite), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0, 84, 147)
	pdf.Ln(2)
	pdf.CellFormat(0, 7, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetDrawColor(0, 84, 147)
	ruleY := pdf.GetY() + 1
	pdf.Line(20, ruleY, pageWidth-20, ruleY)

	// Bill-to block on the left, invoice metadata on the right.
	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	blockY := ruleY + 6
	pdf.SetXY(20, blockY)
	pdf.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Name: "+bill.Customer.Name, "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Address: "+bill.Customer.Address, "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Phone: "+bill.Customer.Phone, "", 1, "L", false, 0, "")
	pdf.SetX(20)
	pdf.CellFormat(0, 6, "Email: "+bill.Customer.Email, "", 1, "L", false, 0, "")
	leftEnd := pdf.GetY()

	metaX := pageWidth - 80
	pdf.SetXY(metaX, blockY)
	pdf.CellFormat(0, 6, "Invoice Details:", "", 1, "L", false, 0, "")
	pdf.SetX(metaX)
	pdf.CellFormat(0, 6, "Invoice #: "+bill.InvoiceNo, "", 1, "L", false, 0, "")
	pdf.SetX(metaX)
	pdf.CellFormat(0, 6, "Date: "+bill.Date, "", 1, "L", false, 0, "")
	pdf.SetX(metaX)
	pdf.CellFormat(0, 6, "Payment Status: "+bill.PaymentStatus, "", 1, "L", false, 0, "")

	// Line-item table. Accessory prices are folded into the service row
	// total, so accessory rows carry the name only.
	tableY := leftEnd + 8
	pdf.SetY(tableY)
	drawRow := func(style string, fillR, fillG, fillB int, textR, textG, textB int, cols [3]string, align string) {
		pdf.SetFont("Arial", style, 10)
		pdf.SetFillColor(fillR, fillG, fillB)
		pdf.SetTextColor(textR, textG, textB)
		pdf.SetX(20)
		pdf.CellFormat(55, 8, cols[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(80, 8, cols[1], "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 8, cols[2], "1", 1, align, true, 0, "")
	}

	drawRow("B", 0, 84, 147, 255, 255, 255,
		[3]string{"Service/Product", "Description", "Amount"}, "R")
	drawRow("", 255, 255, 255, 0, 0, 0,
		[3]string{bill.ServiceType, bill.ServiceDescription, FormatINR(bill.SubtotalCents)}, "R")
	for _, acc := range bill.Accessories {
		drawRow("", 255, 255, 255, 0, 0, 0, [3]string{"Accessory", acc, ""}, "R")
	}
	drawRow("B", 240, 240, 240, 0, 0, 0,
		[3]string{"", "Subtotal", FormatINR(bill.SubtotalCents)}, "R")
	drawRow("B", 240, 240, 240, 0, 0, 0,
		[3]string{"", "Tax", FormatINR(bill.TaxCents)}, "R")
	drawRow("B", 240, 240, 240, 0, 0, 0,
		[3]string{"", "Grand Total", FormatINR(bill.GrandTotalCents)}, "R")

	y := pdf.GetY() + 10

	if bill.AmountInWords != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(20, y)
		pdf.MultiCell(pageWidth-40, 5, "Amount in words: "+bill.AmountInWords, "", "L", false)
		y = pdf.GetY() + 5
	}

	if bill.Notes != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.SetXY(20, y)
		pdf.CellFormat(0, 6, "Notes:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.SetX(20)
		pdf.MultiCell(pageWidth-40, 5, bill.Notes, "", "L", false)
		y = pdf.GetY() + 7
	}

	if len(tpl.Terms) > 0 {
		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(0, 84, 147)
		pdf.SetXY(20, y)
		pdf.CellFormat(0, 6, "Terms and Conditions:", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for i, term := range tpl.Terms {
			pdf.SetX(20)
			pdf.CellFormat(0, 5, fmt.Sprintf("%d. %s", i+1, term), "", 1, "L", false, 0, "")
		}
		y = pdf.GetY() + 5
	}

	if bill.QRCodeURL != "" {
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 100, 100)
		pdf.SetXY(20, y)
		pdf.MultiCell(pageWidth-40, 4, "Verify this bill: "+bill.QRCodeURL, "", "L", false)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(20, pageHeight-15)
	pdf.CellFormat(pageWidth-40, 5, tpl.Footer, "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice %s: render failed: %w", bill.InvoiceNo, err)
	}
	return &Document{data: buf.Bytes()}, nil
}
