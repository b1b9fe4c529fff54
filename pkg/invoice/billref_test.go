package invoice

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"testing"
)

func TestNewBillID(t *testing.T) {
	pattern := regexp.MustCompile(`^BW-\d{5}-\d{4}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := NewBillID("")
		if !pattern.MatchString(id) {
			t.Fatalf("NewBillID() = %q, want format BW-#####-####", id)
		}
		seen[id] = true
	}
	// The random component should produce variety within one run.
	if len(seen) < 2 {
		t.Error("NewBillID() produced no variation across 50 calls")
	}

	if !strings.HasPrefix(NewBillID("INV"), "INV-") {
		t.Error("NewBillID should honor a custom prefix")
	}
}

func TestQRCodeURL(t *testing.T) {
	rawURL := QRCodeURL("", "BW-12345-6789", "cust-1", 34810)

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("QRCodeURL returned unparseable URL: %v", err)
	}
	if u.Host != "chart.googleapis.com" {
		t.Errorf("host = %q, want chart.googleapis.com", u.Host)
	}

	q := u.Query()
	if q.Get("cht") != "qr" {
		t.Errorf("cht = %q, want qr", q.Get("cht"))
	}
	if q.Get("chs") != "200x200" {
		t.Errorf("chs = %q, want 200x200", q.Get("chs"))
	}

	var payload QRPayload
	if err := json.Unmarshal([]byte(q.Get("chl")), &payload); err != nil {
		t.Fatalf("chl is not valid JSON: %v", err)
	}
	if payload.BillID != "BW-12345-6789" || payload.CustomerID != "cust-1" || payload.Amount != 34810 {
		t.Errorf("payload = %+v", payload)
	}
	if payload.GeneratedAt == "" {
		t.Error("payload missing generation timestamp")
	}
}

func TestQRCodeURLCustomEndpoint(t *testing.T) {
	rawURL := QRCodeURL("https://qr.example.com/render", "BW-1-1", "c", 10)
	if !strings.HasPrefix(rawURL, "https://qr.example.com/render?") {
		t.Errorf("QRCodeURL did not use custom endpoint: %q", rawURL)
	}
}
