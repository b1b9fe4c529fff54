package invoice

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
	"strconv"
	"time"
)

// DefaultQREndpoint renders the verification payload as a scannable image.
const DefaultQREndpoint = "https://chart.googleapis.com/chart"

// DefaultBillPrefix prefixes every generated bill ID.
const DefaultBillPrefix = "BW"

// NewBillID generates a human-readable bill identifier of the form
// BW-<5 random digits>-<last 4 digits of the unix-millis clock>. The
// time component biases toward uniqueness for interactive use; IDs are
// not guaranteed collision-free.
func NewBillID(prefix string) string {
	if prefix == "" {
		prefix = DefaultBillPrefix
	}
	randomNum := 10000 + rand.Intn(90000)
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return fmt.Sprintf("%s-%d-%s", prefix, randomNum, millis[len(millis)-4:])
}

// QRPayload is the verification object embedded in the QR code.
type QRPayload struct {
	BillID      string  `json:"billId"`
	CustomerID  string  `json:"customerId"`
	Amount      float64 `json:"amount"`
	GeneratedAt string  `json:"generatedAt"`
}

// QRCodeURL builds the third-party QR rendering URL for a bill. The
// payload is serialized to JSON and carried as a URL-encoded query
// parameter; the endpoint returns a scannable image that this service
// never parses.
func QRCodeURL(endpoint, billID, customerID string, amount float64) string {
	if endpoint == "" {
		endpoint = DefaultQREndpoint
	}
	payload := QRPayload{
		BillID:      billID,
		CustomerID:  customerID,
		Amount:      amount,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, _ := json.Marshal(payload)
	return fmt.Sprintf("%s?cht=qr&chs=200x200&chl=%s", endpoint, url.QueryEscape(string(data)))
}
