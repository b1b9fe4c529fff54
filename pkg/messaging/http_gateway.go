package messaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPGateway posts messages to an external messaging provider (WhatsApp
// Business or SMS aggregator). The provider's wire contract is a JSON
// POST with the recipient, text, and an optional base64 document.
type HTTPGateway struct {
	endpoint string
	apiKey   string
	channel  Channel
	client   *http.Client
}

// NewHTTPGateway creates a gateway for the given channel and provider
// endpoint.
func NewHTTPGateway(channel Channel, endpoint, apiKey string) *HTTPGateway {
	return &HTTPGateway{
		endpoint: endpoint,
		apiKey:   apiKey,
		channel:  channel,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type outboundPayload struct {
	Channel    Channel `json:"channel"`
	To         string  `json:"to"`
	Text       string  `json:"text"`
	Document   string  `json:"document,omitempty"` // base64 PDF
	Filename   string  `json:"filename,omitempty"`
	SentAtUnix int64   `json:"sent_at"`
}

// Send posts the message to the provider and maps any non-2xx response
// to an error.
func (g *HTTPGateway) Send(ctx context.Context, msg *Message) error {
	if g.endpoint == "" {
		return fmt.Errorf("%s gateway is not configured", g.channel)
	}

	payload := outboundPayload{
		Channel:    g.channel,
		To:         msg.Recipient,
		Text:       msg.Body,
		SentAtUnix: time.Now().Unix(),
	}
	// SMS carries a download link in the text instead of an attachment.
	if len(msg.Attachment) > 0 && g.channel != ChannelSMS {
		payload.Document = base64.StdEncoding.EncodeToString(msg.Attachment)
		payload.Filename = msg.AttachmentName
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", g.channel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", g.channel, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s gateway unreachable: %w", g.channel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s gateway rejected message: status %d, body: %s", g.channel, resp.StatusCode, detail)
	}
	return nil
}
