// Package messaging provides the outbound channels used to deliver
// digital invoices: SMTP email plus HTTP gateways for WhatsApp and SMS.
package messaging

import "context"

// Channel identifies an invoice delivery channel.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelSMS      Channel = "sms"
)

// Valid reports whether the channel is one this service can dispatch on.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelSMS:
		return true
	}
	return false
}

// Message is one outbound invoice delivery.
type Message struct {
	Recipient      string // email address or phone number, per channel
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte // PDF bytes; nil for link-only channels
}

// Gateway delivers a message over one external channel. Implementations
// make a single attempt; retry policy belongs to the caller.
type Gateway interface {
	Send(ctx context.Context, msg *Message) error
}
